package command

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoad_SkipsCommentsAndBlankLines verifies only command lines are kept.
func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	src := strings.Join([]string{
		"# warm up",
		"",
		"-k mouse_move -x 10 -y 10",
		"   ",
		"-k mouse_left -sm ease -smt 100\r",
		"-s 250",
	}, "\n")

	cmds, err := Load(strings.NewReader(src), Defaults{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	if cmds[0].Key != KeyMouseMove || cmds[1].Key != KeyMouseLeft || cmds[2].Sleep.Milliseconds() != 250 {
		t.Fatalf("unexpected commands: %+v", cmds)
	}
}

// TestLoad_InvalidLineAbortsFile verifies the first bad line rejects the whole file.
func TestLoad_InvalidLineAbortsFile(t *testing.T) {
	src := "-k mouse_move -x 1 -y 1\n# note\n-k mouse_side\n-k key_a\n"
	cmds, err := Load(strings.NewReader(src), Defaults{})
	if cmds != nil {
		t.Fatalf("expected no commands, got %+v", cmds)
	}
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected LineError, got %v", err)
	}
	if lineErr.Line != 3 {
		t.Fatalf("expected failure on line 3, got %d", lineErr.Line)
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected wrapped UsageError, got %v", err)
	}
}

// TestLoad_IdleLineIsInvalid verifies a line with nothing to do aborts the file.
func TestLoad_IdleLineIsInvalid(t *testing.T) {
	for _, line := range []string{"-k none", "-h", "-f other.txt", "-l :9000 -k key_a"} {
		_, err := Load(strings.NewReader(line+"\n"), Defaults{})
		var lineErr *LineError
		if !errors.As(err, &lineErr) || lineErr.Line != 1 {
			t.Fatalf("%q: expected line 1 error, got %v", line, err)
		}
	}
}

// TestLoad_EmptyFile verifies files without commands report ErrNoCommands.
func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(strings.NewReader("# nothing\n\n"), Defaults{})
	if !errors.Is(err, ErrNoCommands) {
		t.Fatalf("expected ErrNoCommands, got %v", err)
	}
}

// TestReadFile_FromDisk verifies commands load from a path.
func TestReadFile_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmds.txt")
	if err := os.WriteFile(path, []byte("-k key_enter\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cmds, err := ReadFile(path, Defaults{})
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Key != "key_enter" || cmds[0].Action != ActClick {
		t.Fatalf("unexpected commands: %+v", cmds)
	}
}

// TestReadFile_Missing verifies a missing file is an error.
func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), Defaults{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
