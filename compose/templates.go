package compose

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"spt/config"
)

// Values holds variables available for output name template expansion.
type Values struct {
	Context    string
	SourceFile string
	Title      string
	Users      []string
	Results    int
	Format     string
}

func buildUsers(messages []Message) []string {
	seen := make(map[string]struct{}, len(messages))
	result := make([]string, 0, len(messages))
	for _, m := range messages {
		if len(m.User) == 0 {
			continue
		}
		if _, ok := seen[m.User]; ok {
			continue
		}
		seen[m.User] = struct{}{}
		result = append(result, m.User)
	}
	return result
}

func newValues(s *Script, src string, results int, format config.OutputFmt) Values {
	return Values{
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Title:      s.Title,
		Users:      buildUsers(s.Messages),
		Results:    results,
		Format:     format.String(),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
