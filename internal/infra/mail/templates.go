package mail

import (
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// TemplateData feeds subject and body templates.
type TemplateData map[string]any

// TplPasswordReset names the password-reset template pair.
const TplPasswordReset = "password_reset"

//go:embed templates/*.tpl
var templateFS embed.FS

// ErrTemplateNotFound is returned when a template name is not registered.
var ErrTemplateNotFound = errors.New("template not found")

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

// TemplateRegistry holds the parsed subject/body template pairs for
// outgoing mail. Each pair lives in templates/<name>_subject.tpl and
// templates/<name>_body.tpl.
type TemplateRegistry struct {
	templates map[string]emailTemplate
}

// NewTemplateRegistry parses all embedded templates.
func NewTemplateRegistry() (*TemplateRegistry, error) {
	registry := &TemplateRegistry{templates: make(map[string]emailTemplate)}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded templates")
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), "_subject.tpl") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), "_subject.tpl")

		subject, err := parseTemplate("templates/" + name + "_subject.tpl")
		if err != nil {
			return nil, err
		}
		body, err := parseTemplate("templates/" + name + "_body.tpl")
		if err != nil {
			return nil, err
		}

		registry.templates[name] = emailTemplate{subject: subject, body: body}
	}

	return registry, nil
}

// Render executes the named template pair and returns the subject and body.
func (tr *TemplateRegistry) Render(name string, data TemplateData) (subject, body string, err error) {
	tmpl, ok := tr.templates[name]
	if !ok {
		return "", "", errors.Wrapf(ErrTemplateNotFound, "template %q", name)
	}

	var subjectBuilder strings.Builder
	if err := tmpl.subject.Execute(&subjectBuilder, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to render %s subject", name)
	}

	var bodyBuilder strings.Builder
	if err := tmpl.body.Execute(&bodyBuilder, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to render %s body", name)
	}

	return strings.TrimSpace(subjectBuilder.String()), bodyBuilder.String(), nil
}

func parseTemplate(path string) (*template.Template, error) {
	content, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read template %s", path)
	}

	tmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %s", path)
	}

	return tmpl, nil
}
