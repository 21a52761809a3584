package narration

import "testing"

func TestValidVoice(t *testing.T) {
	for _, voice := range Voices {
		if !ValidVoice(voice) {
			t.Errorf("expected %q to be valid", voice)
		}
	}
	for _, voice := range []string{"", "Nova", "robot", "nova "} {
		if ValidVoice(voice) {
			t.Errorf("expected %q to be invalid", voice)
		}
	}
}
