// Package narration implements the best-effort speech port. Narrative text
// is synthesized through the OpenAI speech endpoint and handed to whatever
// audio player the system has. Failures are reported but expected to be
// swallowed by callers; narration must never block or abort a turn.
package narration

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"dungeonexplorer/internal/debug"
)

// Voices supported by the speech endpoint.
var Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// ValidVoice reports whether v names a supported voice.
func ValidVoice(v string) bool {
	for _, voice := range Voices {
		if voice == v {
			return true
		}
	}
	return false
}

type Narrator struct {
	client *openai.Client
	debug  *debug.Logger
}

func NewNarrator(apiKey string, debugLogger *debug.Logger) *Narrator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Narrator{
		client: &client,
		debug:  debugLogger,
	}
}

// Speak synthesizes text with the given voice and plays it synchronously.
func (n *Narrator) Speak(ctx context.Context, text, voice string) error {
	if !ValidVoice(voice) {
		voice = "nova"
	}

	res, err := n.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelTTS1,
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer res.Body.Close()

	tmp, err := os.CreateTemp("", "narration-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to stage narration audio: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, res.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write narration audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write narration audio: %w", err)
	}

	return n.play(ctx, tmp.Name())
}

func (n *Narrator) play(ctx context.Context, path string) error {
	name, args, ok := playerCommand(path)
	if !ok {
		return fmt.Errorf("no audio player found on this system")
	}
	if n.debug != nil {
		n.debug.Printf("Narration playback via %s", name)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("audio playback failed: %w", err)
	}
	return nil
}

// playerCommand picks the first available command-line audio player.
func playerCommand(path string) (string, []string, bool) {
	candidates := []struct {
		name string
		args []string
	}{
		{"afplay", []string{path}},
		{"mpg123", []string{"-q", path}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return c.name, c.args, true
		}
	}
	return "", nil, false
}
