package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shrovate/shrovate/pkg/chat"
	"github.com/shrovate/shrovate/pkg/gemini"
	"github.com/shrovate/shrovate/pkg/media"
)

var chatStyles = struct {
	user   lipgloss.Style
	system lipgloss.Style
	errs   lipgloss.Style
	meta   lipgloss.Style
}{
	user:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00f3ff")),
	system: lipgloss.NewStyle().Foreground(lipgloss.Color("#bc13fe")),
	errs:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5555")),
	meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long: `An interactive terminal session against the same router the web
console uses.

Slash commands:
  /mode turbo|standard|thinking   switch the reasoning tier
  /voice on|off                   toggle speech synthesis
  /save <file>                    write the transcript to a file
  /quit                           exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		client, err := gemini.NewClient(cmd.Context(), cfg.APIKey)
		if err != nil {
			return err
		}

		store := chat.NewStore()
		session := chat.NewSession()
		router := chat.NewRouter(client)

		fmt.Println(chatStyles.meta.Render("SHROVATE terminal link established. /quit to exit."))

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for {
			fmt.Print(chatStyles.user.Render("> "))
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "/") {
				if quit := runSlashCommand(line, session, store); quit {
					return nil
				}
				continue
			}

			voiceMode := session.ApplyVoiceDirective(line)
			store.Append(chat.NewUserTurn(line, nil))

			start := time.Now()
			reply, err := router.Respond(cmd.Context(), &chat.Request{
				Prompt:    line,
				VoiceMode: voiceMode,
				Mode:      session.Mode(),
			})
			if err != nil {
				turn := chat.NewErrorTurn()
				store.Append(turn)
				fmt.Println(chatStyles.errs.Render(turn.Text))
				continue
			}
			turn := chat.NewSystemTurn(reply)
			store.Append(turn)

			fmt.Println(chatStyles.system.Render(turn.Text))
			printTurnMeta(turn, time.Since(start))
		}
	},
}

// runSlashCommand handles local commands, returning true on /quit.
func runSlashCommand(line string, session *chat.Session, store *chat.Store) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/mode":
		if len(fields) == 2 {
			session.SetMode(chat.Mode(fields[1]))
		}
		fmt.Println(chatStyles.meta.Render("mode: " + string(session.Mode())))
	case "/voice":
		if len(fields) == 2 {
			session.SetVoiceMode(fields[1] == "on")
		}
		fmt.Println(chatStyles.meta.Render(fmt.Sprintf("voice: %v", session.VoiceMode())))
	case "/save":
		name := "SHROVATE_LOG_" + time.Now().Format("2006-01-02T15-04-05") + ".txt"
		if len(fields) == 2 {
			name = fields[1]
		}
		if err := os.WriteFile(name, []byte(chat.Transcript(store.Turns())), 0o644); err != nil {
			fmt.Println(chatStyles.errs.Render("save failed: " + err.Error()))
		} else {
			fmt.Println(chatStyles.meta.Render("saved " + name))
		}
	default:
		fmt.Println(chatStyles.meta.Render("unknown command: " + fields[0]))
	}
	return false
}

// printTurnMeta reports media and grounding attached to a system turn.
func printTurnMeta(turn *chat.Turn, elapsed time.Duration) {
	var notes []string
	if turn.ImageURL != "" {
		notes = append(notes, "image generated")
	}
	if turn.VideoURL != "" {
		notes = append(notes, "video generated")
	}
	if turn.AudioData != "" {
		if buf, err := media.DecodeSpeech(turn.AudioData); err == nil {
			notes = append(notes, fmt.Sprintf("speech %.1fs", buf.Duration().Seconds()))
		}
	}
	for _, s := range turn.WebSources {
		notes = append(notes, "source: "+s.URI)
	}
	notes = append(notes, elapsed.Round(time.Millisecond).String())
	fmt.Println(chatStyles.meta.Render("[" + strings.Join(notes, " | ") + "]"))
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
