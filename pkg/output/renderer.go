package output

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/arthur-debert/witd/pkg/output/styles"
	"github.com/arthur-debert/witd/pkg/rules"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/arthur-debert/witd/pkg/ui"
	"github.com/arthur-debert/witd/pkg/watch"
	"github.com/rs/zerolog"
)

// Renderer writes operator facing output in a single format
type Renderer struct {
	w      io.Writer
	format ui.Format
	logger zerolog.Logger
}

// NewRenderer creates a Renderer for w. FormatAuto is resolved against w.
func NewRenderer(w io.Writer, format ui.Format) *Renderer {
	r := &Renderer{
		w:      w,
		format: ui.Resolve(format, w),
		logger: logging.GetLogger("output"),
	}
	r.logger.Debug().Str("format", r.format.String()).Msg("Renderer created")
	return r
}

// Format returns the resolved format
func (r *Renderer) Format() ui.Format {
	return r.format
}

// style applies a named style in terminal mode and nothing otherwise
func (r *Renderer) style(name, s string) string {
	if r.format != ui.FormatTerminal {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (r *Renderer) println(lines ...string) error {
	_, err := fmt.Fprintln(r.w, strings.Join(lines, "\n"))
	return err
}

func (r *Renderer) emit(event string, fields map[string]interface{}) error {
	fields["event"] = event
	return json.NewEncoder(r.w).Encode(fields)
}

// RenderParseError shows why a rule was rejected, followed by the examples.
// Errors that are not parse errors are rendered as with RenderError.
func (r *Renderer) RenderParseError(err error) error {
	var perr *rules.ParseError
	if !stderrors.As(err, &perr) {
		return r.RenderError(err)
	}

	if r.format == ui.FormatJSON {
		return r.emit("parse_error", map[string]interface{}{
			"kind":     perr.Kind.String(),
			"message":  perr.Error(),
			"input":    perr.Input,
			"examples": rules.Examples(),
		})
	}

	lines := []string{r.style("Error", "Error: ") + perr.Error()}
	if strings.TrimSpace(perr.Input) != "" {
		lines = append(lines, r.style("Detail", "  rule: "+perr.Input))
	}
	lines = append(lines, "")
	lines = append(lines, r.exampleLines()...)
	return r.println(lines...)
}

// RenderExamples lists the canonical rule for every run mode
func (r *Renderer) RenderExamples() error {
	if r.format == ui.FormatJSON {
		return r.emit("examples", map[string]interface{}{"examples": rules.Examples()})
	}
	return r.println(r.exampleLines()...)
}

func (r *Renderer) exampleLines() []string {
	lines := []string{r.style("Title", "Examples:")}
	for _, example := range rules.Examples() {
		lines = append(lines, r.style("Example", "  "+example))
	}
	return lines
}

// RenderRules shows parsed rules with the lint warnings of each
func (r *Renderer) RenderRules(parsed []types.Rule) error {
	if r.format == ui.FormatJSON {
		for _, rule := range parsed {
			warnings := []string{}
			for _, w := range rules.Lint(rule) {
				warnings = append(warnings, w.Message)
			}
			if err := r.emit("rule", map[string]interface{}{
				"rule":     rule,
				"text":     rule.String(),
				"warnings": warnings,
			}); err != nil {
				return err
			}
		}
		return nil
	}

	var lines []string
	for i, rule := range parsed {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.style("Title", fmt.Sprintf("%d.", i+1)),
			r.style("Mode", rule.RunMode.String()),
			r.style("Path", rule.RootPath)))
		lines = append(lines, r.style("Command", "   "+rule.CommandTemplate))
		for _, w := range rules.Lint(rule) {
			lines = append(lines, r.style("Warning", "   warning: "+w.Message))
		}
	}
	return r.println(lines...)
}

// RenderCycle reports the rules that saw changes in a cycle and the
// dispatches that failed. Quiet cycles produce no text output.
func (r *Renderer) RenderCycle(cycle int, reports []watch.CycleReport) error {
	if r.format == ui.FormatJSON {
		return r.renderCycleJSON(cycle, reports)
	}

	var lines []string
	for _, report := range reports {
		if report.Err != nil {
			lines = append(lines, r.errorLines(report.Err)...)
			continue
		}
		if !report.Report.Changed() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s: %d changed, %d dispatched",
			r.style("Mode", report.Rule.RunMode.String()),
			r.style("Path", report.Rule.RootPath),
			report.Report.Eligible,
			len(report.Report.Dispatches)))
		for _, failure := range report.Report.Failures {
			lines = append(lines, r.errorLines(failure)...)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return r.println(lines...)
}

func (r *Renderer) renderCycleJSON(cycle int, reports []watch.CycleReport) error {
	for _, report := range reports {
		fields := map[string]interface{}{
			"cycle":      cycle,
			"root":       report.Rule.RootPath,
			"mode":       report.Rule.RunMode.String(),
			"observed":   report.Report.Observed,
			"eligible":   report.Report.Eligible,
			"dispatches": report.Report.Dispatches,
		}
		if report.Report.Skipped > 0 {
			fields["skipped"] = report.Report.Skipped
		}
		if report.Err != nil {
			fields["error"] = report.Err.Error()
		}
		if len(report.Report.Failures) > 0 {
			failures := make([]string, 0, len(report.Report.Failures))
			for _, f := range report.Report.Failures {
				failures = append(failures, f.Error())
			}
			fields["failures"] = failures
		}
		if err := r.emit("cycle", fields); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with its code details
func (r *Renderer) RenderError(err error) error {
	if r.format == ui.FormatJSON {
		fields := map[string]interface{}{"message": err.Error()}
		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			fields["code"] = string(code)
		}
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			fields["details"] = details
		}
		return r.emit("error", fields)
	}
	return r.println(r.errorLines(err)...)
}

func (r *Renderer) errorLines(err error) []string {
	lines := []string{r.style("Error", "Error: ") + err.Error()}

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, r.style("Detail", fmt.Sprintf("  %s: %v", k, details[k])))
	}
	return lines
}

// RenderMessage renders a simple message with a named style
func (r *Renderer) RenderMessage(style, message string) error {
	if r.format == ui.FormatJSON {
		return r.emit("message", map[string]interface{}{"message": message})
	}
	return r.println(r.style(style, message))
}
