package exporter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "lemcli/internal/errors"
	"lemcli/pkg/contracts/domain"
)

// JSConstWriter writes the artifact as a JavaScript constant assignment so a
// page opened from disk can load it with a plain <script> tag.
type JSConstWriter struct {
	constName string
	banner    string
	logger    *slog.Logger
}

// NewJSConstWriter creates a writer for the given constant name and banner.
// An empty banner omits the comment line.
func NewJSConstWriter(constName, banner string, logger *slog.Logger) *JSConstWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSConstWriter{
		constName: constName,
		banner:    banner,
		logger:    logger.With(slog.String("component", "js_const_writer")),
	}
}

// Encode writes the artifact to w
func (jw *JSConstWriter) Encode(w io.Writer, artifact *domain.Artifact) error {
	bw := bufio.NewWriter(w)

	if jw.banner != "" {
		if _, err := fmt.Fprintf(bw, "/* %s */\n", jw.banner); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "const %s = ", jw.constName); err != nil {
		return err
	}

	payload, err := jw.marshal(artifact)
	if err != nil {
		return apperrors.EncodeFailed(err)
	}
	if _, err := bw.Write(payload); err != nil {
		return err
	}
	if _, err := bw.WriteString(";\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// marshal renders the artifact as 2-space indented JSON with HTML escaping off.
// The encoder's trailing newline is dropped.
func (jw *JSConstWriter) marshal(artifact *domain.Artifact) ([]byte, error) {
	if artifact == nil {
		artifact = domain.NewArtifact()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(artifact); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}

// WriteFile writes the artifact to path, creating the directory if needed.
// The content goes to a temp file in the same directory that is renamed into
// place, so readers never see a partial file.
func (jw *JSConstWriter) WriteFile(path string, artifact *domain.Artifact) error {
	if artifact == nil {
		artifact = domain.NewArtifact()
	}
	jw.logger.Info("Writing artifact",
		slog.String("path", path),
		slog.String("const", jw.constName),
		slog.Int("vessels", artifact.Vessels.Len()),
		slog.Int("points", artifact.TotalPoints()))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.OutputUnwritable(path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperrors.OutputUnwritable(path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := jw.Encode(tmp, artifact); err != nil {
		if apperrors.IsCode(err, apperrors.CodeEncodeFailed) {
			return err
		}
		return apperrors.OutputUnwritable(path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return apperrors.OutputUnwritable(path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.OutputUnwritable(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		committed = true
		return apperrors.OutputUnwritable(path, err)
	}
	committed = true

	jw.logger.Info("Artifact written", slog.String("path", path))
	return nil
}
