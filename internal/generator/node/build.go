package node

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kb-labs/projgen/internal/manifest"
	"github.com/kb-labs/projgen/internal/prompt"
	"github.com/kb-labs/projgen/internal/registry"
)

const (
	DefaultEntryPoint = "index.js"
	ServerEntryPoint  = "./bin/www"
)

// Packages every project depends on.
var (
	baseDependencies    = []string{"debug", "dotenv", "module-alias"}
	baseDevDependencies = []string{"nodemon"}
)

// drivers maps a Sequelize dialect to its npm driver package.
var drivers = map[string]string{
	DialectSQLite: "sqlite3",
	DialectMySQL:  "mysql2",
}

// EntryPoint returns the main module for a template. Templates that ship an
// HTTP server start from ./bin/www.
func EntryPoint(template string) string {
	switch template {
	case TemplateBackend, TemplateFullStack:
		return ServerEntryPoint
	default:
		return DefaultEntryPoint
	}
}

// NewScripts returns the npm scripts for a project. debug is the DEBUG
// namespace, main the entry point.
func NewScripts(debug, main string) manifest.Scripts {
	return manifest.Scripts{
		Dev:   fmt.Sprintf("NODE_ENV=development DEBUG=%s:* ./node_modules/nodemon/bin/nodemon.js %s", debug, main),
		Start: fmt.Sprintf("NODE_ENV=production node %s", main),
		Test:  fmt.Sprintf("NODE_ENV=test DEBUG=%s:* node %s", debug, main),
	}
}

// Build assembles the manifest from the main answers and, when Sequelize is
// selected, the dialects chosen for each environment. Every version comes
// from reg.
func Build(answers *prompt.Answers, dialects []string, reg *registry.Registry) (*manifest.Manifest, error) {
	main := EntryPoint(answers.String(KeyTemplate))

	m := manifest.New(answers.String(KeyName), answers.String(KeyVersion))
	m.Type = cases.Lower(language.Und).String(answers.String(KeyType))
	m.Private = answers.String(KeyVisibility) == VisibilityPrivate
	m.Description = answers.String(KeyDescription)
	m.Main = main
	m.Scripts = NewScripts(answers.String(KeyDebug), main)
	m.Author = answers.String(KeyAuthor)
	m.Licence = answers.String(KeyLicence)

	deps := dependencySet{m: m, reg: reg}
	deps.add(baseDependencies...)
	deps.addDev(baseDevDependencies...)

	if answers.Has(KeyFeatures, FeatureSequelize) {
		deps.add("sequelize")
		deps.addDev("sequelize-cli")
		for _, dialect := range dialects {
			driver, ok := drivers[dialect]
			if !ok {
				return nil, fmt.Errorf("unknown database dialect %q", dialect)
			}
			deps.add(driver)
		}
	}

	if answers.Has(KeyFeatures, FeatureJest) {
		deps.addDev("jest")
	}

	if deps.err != nil {
		return nil, deps.err
	}
	return m, nil
}

// dependencySet adds registry-pinned packages to a manifest and remembers
// the first missing pin.
type dependencySet struct {
	m   *manifest.Manifest
	reg *registry.Registry
	err error
}

func (d *dependencySet) add(names ...string) {
	for _, name := range names {
		if c, ok := d.lookup(name); ok {
			d.m.AddDependency(name, c)
		}
	}
}

func (d *dependencySet) addDev(names ...string) {
	for _, name := range names {
		if c, ok := d.lookup(name); ok {
			d.m.AddDevDependency(name, c)
		}
	}
}

func (d *dependencySet) lookup(name string) (string, bool) {
	c, err := d.reg.Constraint(name)
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return "", false
	}
	return c, true
}
