package generate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"bgc/config"
	"bgc/misc"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context   string
	Name      string // theme file name without extension
	Theme     string // theme file name
	Dir       string // directory of the theme file
	ModTime   time.Time
	App       string
	Version   string
	Utilities int // number of generated utilities, zero when not yet known
}

func newValues(src string, utilities int) Values {
	v := Values{
		Name:      strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Theme:     filepath.Base(src),
		Dir:       filepath.Dir(src),
		App:       misc.GetAppName(),
		Version:   misc.GetVersion(),
		Utilities: utilities,
	}
	if fi, err := os.Stat(src); err == nil {
		v.ModTime = fi.ModTime()
	}
	return v
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
