// Package gemini implements the remote generative capability boundary
// on the Gemini API.
//
// The client exposes the named operations the chat router depends on:
// text generation (with optional search grounding and a reasoning
// budget), image/video understanding, image editing, image synthesis,
// asynchronous video synthesis with polling, speech synthesis, and
// audio transcription. All heavy lifting happens remotely; this package
// only shapes requests and unpacks responses.
//
// Example:
//
//	client, err := gemini.NewClient(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	res, err := client.GenerateText(ctx, &chat.TextRequest{
//	    Prompt: "hello",
//	    Tier:   chat.ModeStandard,
//	})
package gemini
