package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Subject summarizes the score, e.g. "Assessment Result – 7/10 (70%)".
func Subject(sub Submission) string {
	return fmt.Sprintf("Assessment Result – %d/%d (%d%%)",
		sub.Result.Score, sub.Result.Total, int(math.Round(sub.Result.Percent)))
}

// letterList renders option indices as letters: [0 2] -> "A, C".
// Empty selections render as an em dash.
func letterList(indices []int) string {
	if len(indices) == 0 {
		return "—"
	}
	letters := make([]string, len(indices))
	for i, idx := range indices {
		letters[i] = string(rune('A' + idx))
	}
	return strings.Join(letters, ", ")
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"letters": letterList,
	"inc":     func(i int) int { return i + 1 },
	"round":   func(f float64) int { return int(math.Round(f)) },
	"mark": func(ok bool) string {
		if ok {
			return "✅"
		}
		return "❌"
	},
}).Parse(`<div style="font-family:system-ui,Segoe UI,Roboto,Arial;line-height:1.4;">
  <h2 style="margin:0 0 8px;">Assessment – Submission {{.ID}}</h2>
  <p style="margin:0 0 10px;">
    <strong>Score:</strong> {{.Result.Score}} / {{.Result.Total}} ({{round .Result.Percent}}%)<br/>
    <strong>Time:</strong> {{.When.Format "2006-01-02 15:04:05 MST"}}<br/>
    <strong>Client:</strong> IP {{.RemoteAddr}}, UA {{.UserAgent}}
  </p>
  <table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse; width:100%; font-size:14px;">
    <thead style="background:#f3f4f6;">
      <tr><th>#</th><th>Topic</th><th>Question</th><th>User</th><th>Correct</th><th>✓</th><th>Explanation</th></tr>
    </thead>
    <tbody>
      {{- range $i, $d := .Result.Detail}}
      <tr>
        <td>{{inc $i}}</td>
        <td>{{$d.Topic}}</td>
        <td>{{$d.Question}}</td>
        <td>{{letters $d.User}}</td>
        <td>{{letters $d.Correct}}</td>
        <td>{{mark $d.IsCorrect}}</td>
        <td>{{$d.Explanation}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
</div>`))

// RenderHTML produces the report body for one submission.
func RenderHTML(sub Submission) (string, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}
