package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestChangeLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	t.Run("known level", func(t *testing.T) {
		if !ChangeLevel("DEBUG") {
			t.Fatal("expected DEBUG to be accepted")
		}
		if log.GetLevel() != log.DebugLevel {
			t.Errorf("level = %v, want debug", log.GetLevel())
		}
	})

	t.Run("unknown level keeps current", func(t *testing.T) {
		log.SetLevel(log.WarnLevel)
		if ChangeLevel("verbose") {
			t.Fatal("expected unknown level to be rejected")
		}
		if log.GetLevel() != log.WarnLevel {
			t.Errorf("level = %v, want warn", log.GetLevel())
		}
	})
}
