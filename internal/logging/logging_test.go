package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava12/bl/config"
	. "github.com/ava12/bl/internal/test"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "info", Format: "text"}, &buf)
	log.Debug("hidden")
	log.Info("shown", "key", "value")
	out := buf.String()
	ExpectBool(t, false, strings.Contains(out, "hidden"))
	Assert(t, strings.Contains(out, "msg=shown key=value"), "unexpected output %q", out)
}

func TestDefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{}, &buf)
	log.Info("hidden")
	log.Warn("shown")
	out := buf.String()
	ExpectBool(t, false, strings.Contains(out, "hidden"))
	ExpectBool(t, true, strings.Contains(out, "shown"))
}

func TestJsonFormat(t *testing.T) {
	var buf bytes.Buffer
	New(config.Log{Level: "debug", Format: "json"}, &buf).Debug("parsed", "name", "P")
	var rec map[string]any
	ExpectNoError(t, json.Unmarshal(buf.Bytes(), &rec))
	ExpectString(t, "parsed", rec["msg"].(string))
	ExpectString(t, "P", rec["name"].(string))
	ExpectString(t, "DEBUG", rec["level"].(string))
}
