package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/shrovate/shrovate/pkg/chat"
)

// SynthesizeVideo submits a video synthesis job. The returned handle is
// polled by the caller; the job runs remotely and survives between
// polls.
func (c *Client) SynthesizeVideo(ctx context.Context, req *chat.VideoRequest) (chat.VideoJob, error) {
	op, err := c.genai.Models.GenerateVideos(ctx, c.models.Video, req.Prompt, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     req.Resolution,
		AspectRatio:    req.AspectRatio,
	})
	if err != nil {
		return nil, unwrapErr(err)
	}
	return &videoJob{client: c, op: op}, nil
}

// videoJob tracks a remote video synthesis operation.
type videoJob struct {
	client *Client
	op     *genai.GenerateVideosOperation
}

// Poll refreshes the operation state.
func (j *videoJob) Poll(ctx context.Context) (bool, error) {
	if j.op.Done {
		return true, nil
	}
	op, err := j.client.genai.Operations.GetVideosOperation(ctx, j.op, nil)
	if err != nil {
		return false, unwrapErr(err)
	}
	j.op = op
	return j.op.Done, nil
}

// Result fetches the finished video bytes. The API serves results
// either inline or behind a keyed download URI.
func (j *videoJob) Result(ctx context.Context) (*chat.VideoResult, error) {
	if j.op.Response == nil || len(j.op.Response.GeneratedVideos) == 0 {
		return nil, fmt.Errorf("video operation finished without a result")
	}
	video := j.op.Response.GeneratedVideos[0].Video
	if video == nil {
		return nil, fmt.Errorf("video operation finished without a video")
	}

	mime := video.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	if len(video.VideoBytes) > 0 {
		return &chat.VideoResult{MIMEType: mime, Data: video.VideoBytes}, nil
	}
	if video.URI == "" {
		return nil, fmt.Errorf("video result has neither bytes nor a download URI")
	}

	data, err := j.client.download(ctx, video.URI)
	if err != nil {
		return nil, err
	}
	return &chat.VideoResult{MIMEType: mime, Data: data}, nil
}

// download fetches a result artifact, authenticating with the API key
// as a query parameter the way the download endpoints expect.
func (c *Client) download(ctx context.Context, uri string) ([]byte, error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+sep+"key="+c.apiKey, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download video: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download video: unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
