package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"isoprobe/pkg/model"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type Renderer interface {
	Render(w io.Writer, report model.Report) error
}

func New(f Format) Renderer {
	switch f {
	case FormatJSON:
		return &jsonRenderer{}
	case FormatYAML:
		return &yamlRenderer{}
	default:
		return &textRenderer{}
	}
}

type jsonRenderer struct{}

func (r *jsonRenderer) Render(w io.Writer, report model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type yamlRenderer struct{}

func (r *yamlRenderer) Render(w io.Writer, report model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// sections fixes the report order; classification never depends on it.
var sections = []struct {
	Domain model.Domain
	Title  string
}{
	{model.DomainProcess, "PID / Processes"},
	{model.DomainFilesystem, "Filesystem / Mounts"},
	{model.DomainNetwork, "Network"},
	{model.DomainCgroup, "Cgroups / Limits"},
	{model.DomainPrivilege, "Privileges / Caps"},
	{model.DomainDevice, "Devices"},
	{model.DomainMarker, "Container Clues"},
}

var tagColors = map[model.Severity]*color.Color{
	model.SeverityOK:   color.New(color.FgGreen),
	model.SeverityWarn: color.New(color.FgYellow),
	model.SeverityInfo: color.New(color.FgCyan),
	model.SeverityErr:  color.New(color.FgRed),
}

type textRenderer struct{}

func (r *textRenderer) Render(w io.Writer, report model.Report) error {
	// Build the whole report first so a broken sink surfaces as the one
	// write error instead of a half-emitted report.
	var buf bytes.Buffer

	for _, s := range sections {
		fmt.Fprintf(&buf, "=== %s ===\n", s.Title)
		for _, f := range report.ForDomain(s.Domain) {
			writeLine(&buf, f)
		}
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "=== Quick Verdict ===\n")
	verdictSev := model.SeverityWarn
	switch report.Verdict {
	case model.VerdictStrong:
		verdictSev = model.SeverityOK
	case model.VerdictModerate:
		verdictSev = model.SeverityInfo
	}
	writeLine(&buf, model.Finding{
		Severity: verdictSev,
		Message:  fmt.Sprintf("isolation score: %d/%d", report.Score, report.MaxScore),
	})
	writeLine(&buf, model.Finding{
		Severity: verdictSev,
		Message:  fmt.Sprintf("verdict: %s isolation evidence", report.Verdict),
	})

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeLine(buf *bytes.Buffer, f model.Finding) {
	tag := fmt.Sprintf("%-6s", "["+string(f.Severity)+"]")
	if c, ok := tagColors[f.Severity]; ok {
		tag = c.Sprint(tag)
	}
	if f.Evidence != "" {
		fmt.Fprintf(buf, "%s %s (%s)\n", tag, f.Message, f.Evidence)
		return
	}
	fmt.Fprintf(buf, "%s %s\n", tag, f.Message)
}
