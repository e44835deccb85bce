package pergola_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/aretw0/pergola"
)

// jsonBody strips the banner and the trailing separator, returning the
// printed JSON text between them.
func jsonBody(t *testing.T, out string) string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) < 5 {
		t.Fatalf("output too short to contain a JSON block: %q", out)
	}
	return strings.Join(lines[3:len(lines)-1], "\n")
}

func TestJSONRoundTrip(t *testing.T) {
	data := map[string]any{
		"question": "What is self-reflection?",
		"retries":  float64(2),
		"grades": map[string]any{
			"relevant": true,
			"sources":  []any{"a.md", "b.md"},
		},
	}

	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)
	if err := c.JSON(data, "Grading"); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(jsonBody(t, buf.String())), &got); err != nil {
		t.Fatalf("printed body does not re-parse: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("round-trip mismatch:\ngot  %#v\nwant %#v", got, data)
	}
}

func TestJSONNonASCIIVerbatim(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	data := map[string]any{"answer": "café, 日本語, emoji 🚀", "html": "<not&escaped>"}
	if err := c.JSON(data, ""); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"café", "日本語", "🚀", "<not&escaped>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q verbatim in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, `\u`) {
		t.Errorf("no ASCII escape sequences expected, got:\n%s", out)
	}
}

func TestJSONTitles(t *testing.T) {
	t.Run("Default Title", func(t *testing.T) {
		var buf bytes.Buffer
		c := pergola.NewConsole(&buf)
		if err := c.JSON(map[string]any{"k": "v"}, ""); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "  JSON DATA \n") {
			t.Errorf("expected default title banner, got:\n%s", buf.String())
		}
	})

	t.Run("Custom Title Uppercased", func(t *testing.T) {
		var buf bytes.Buffer
		c := pergola.NewConsole(&buf)
		if err := c.JSON(map[string]any{"k": "v"}, "Graded Documents"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "  GRADED DOCUMENTS \n") {
			t.Errorf("expected custom title banner, got:\n%s", buf.String())
		}
	})
}

func TestJSONIndentation(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	if err := c.JSON(map[string]any{"outer": map[string]any{"inner": 1}}, "x"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"outer\"") {
		t.Errorf("expected two-space indentation, got:\n%s", buf.String())
	}
}

func TestJSONUnencodableValue(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	err := c.JSON(make(chan int), "broken")
	if err == nil {
		t.Fatal("expected error for unencodable value")
	}
	// The failure must not leave a half-written block behind.
	if buf.Len() != 0 {
		t.Errorf("partial output written on encode failure: %q", buf.String())
	}
}

func TestJSONTrailingSeparator(t *testing.T) {
	var buf bytes.Buffer
	c := pergola.NewConsole(&buf)

	if err := c.JSON([]any{"a"}, "x"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), strings.Repeat("-", 50)+"\n") {
		t.Errorf("block must end with a full-width separator, got:\n%q", buf.String())
	}
}
