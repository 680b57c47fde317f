package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/research"
)

// pageData feeds the single page template. Report is nil on the bare form.
type pageData struct {
	Title       string
	Description string
	Company     string
	Role        string
	Error       string
	Report      *research.Report
	Version     string
}

var page = template.Must(template.New("page").Funcs(template.FuncMap{
	"took": func(d time.Duration) string { return d.Round(time.Millisecond).String() },
	"paragraphs": paragraphs,
}).Parse(pageTpl))

// paragraphs splits model text on blank lines, then each paragraph into its
// non-empty lines so lists keep one item per line.
func paragraphs(s string) [][]string {
	var out [][]string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		var lines []string
		for _, l := range strings.Split(p, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) > 0 {
			out = append(out, lines)
		}
	}
	return out
}

func newPageData(d deps.Deps) pageData {
	return pageData{
		Title:       d.Title,
		Description: d.Description,
		Version:     d.Version,
	}
}

// render executes into a buffer so a template error never leaves a
// half-written page behind.
func render(w http.ResponseWriter, status int, data pageData, log logger.Logger) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		log.Error("render page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;margin:0;display:grid;grid-template-columns:280px 1fr;min-height:100vh}
aside{background:#f4f5f7;padding:1rem;border-right:1px solid #ddd}
aside label{display:block;margin:.75rem 0 .25rem;font-size:.9rem}
aside input{width:100%;box-sizing:border-box;padding:6px}
aside button{margin-top:1rem;padding:6px 14px}
main{max-width:1000px;padding:1rem 2rem}
.alert{padding:8px 12px;border-radius:6px;margin:.5rem 0}
.alert.error{background:#fde8e8;color:#9b1c1c}
.alert.warning{background:#fdf6e3;color:#8a6d3b}
.alert.info{background:#e8f1fd;color:#1c4e9b}
.video-container{display:flex;gap:12px;align-items:flex-start;padding:8px 0;border-bottom:1px solid #eee}
.thumbnail{border-radius:6px}
table{border-collapse:collapse}
td,th{border:1px solid #ddd;padding:6px 10px;text-align:left}
footer{color:#888;font-size:.8rem;margin-top:2rem}
</style>
<body>
<aside>
  <h2>Search Parameters</h2>
  <form method="get" action="/research">
    <label for="company">Company Name</label>
    <input id="company" name="company" value="{{.Company}}" placeholder="Enter company name" />
    <label for="role">Job Role (optional)</label>
    <input id="role" name="role" value="{{.Role}}" placeholder="Enter job role if applicable" />
    <button type="submit">Research</button>
  </form>
</aside>
<main>
  <h1>{{.Title}}</h1>
  <p class="description">{{.Description}}</p>
  {{with .Error}}<div class="alert error" id="form-error">{{.}}</div>{{end}}
  {{with .Report}}
  <section id="overview">
    <h2>Company Overview</h2>
    {{range paragraphs .Overview.Text}}<p>{{range $i, $line := .}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>{{end}}
  </section>
  <section id="videos">
    <h2>YouTube Videos</h2>
    {{range .Topics}}{{template "videos" .}}{{end}}
    {{with .RoleVideos}}{{template "videos" .}}{{end}}
  </section>
  <section id="resources">
    <h2>{{.Company}} Interview Preparation Resources</h2>
    {{if .Resources}}
    <p>{{.ResourcesIntro}}</p>
    <ul class="resources">
      {{range .Resources}}<li><a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a></li>
      {{end}}
    </ul>
    <div class="alert info">{{.ResourcesInfo}}</div>
    {{else}}
    <div class="alert warning">{{.ResourcesWarning}}</div>
    {{end}}
  </section>
  <section id="recommended">
    <h3>Recommended Job Preparation and Career Resources</h3>
    <p>Here are some excellent general resources to help you prepare for tech interviews and advance your career:</p>
    <table>
      <tr><th>Repository</th><th>Description</th></tr>
      {{range .General}}<tr><td><a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a></td><td>{{.Description}}</td></tr>
      {{end}}
    </table>
  </section>
  {{end}}
  <footer>{{with .Report}}run <span class="run-id">{{.RunID}}</span> in {{took .Duration}} | {{end}}{{.Version}}</footer>
</main>
</body>
</html>
{{define "videos"}}<div class="topic">
  <h3>{{.Heading}}</h3>
  {{with .Intro}}<p>{{.}}</p>{{end}}
  {{with .Err}}<div class="alert error">Error searching YouTube videos: {{.}}</div>{{end}}
  {{range .Videos}}<div class="video-container">
    <a href="{{.VideoURL}}" target="_blank" rel="noopener"><img class="thumbnail" src="{{.ThumbnailURL}}" width="220" alt="" /></a>
    <div class="video-info"><a href="{{.VideoURL}}" target="_blank" rel="noopener"><strong>{{.Title}}</strong></a></div>
  </div>
  {{end}}
  {{with .Warning}}<div class="alert warning">{{.}}</div>{{end}}
</div>{{end}}
`
