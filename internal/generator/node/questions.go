package node

import (
	"errors"
	"path/filepath"
	"regexp"

	"github.com/kb-labs/projgen/internal/prompt"
)

// Answer keys.
const (
	KeyName        = "name"
	KeyDebug       = "debug"
	KeyVersion     = "version"
	KeyType        = "type"
	KeyVisibility  = "visibility"
	KeyDescription = "description"
	KeyAuthor      = "author"
	KeyLicence     = "licence"
	KeyTemplate    = "template"
	KeyFeatures    = "features"

	KeyDevelopmentDB = "db.development"
	KeyTestDB        = "db.test"
	KeyProductionDB  = "db.production"
)

const (
	ModuleCommonJS = "CommonJS"
	ModuleESM      = "Module"

	VisibilityPrivate = "Private"
	VisibilityPublic  = "Public"

	TemplateGeneric   = "Generic"
	TemplateBackend   = "Backend"
	TemplateFrontend  = "Frontend"
	TemplateFullStack = "Full Stack"
	TemplateCLI       = "Commandline Tool"

	FeatureSequelize = "sequelize"
	FeatureJest      = "jest"

	DialectSQLite = "SQLite"
	DialectMySQL  = "MySQL"

	DefaultDebugIdentifier = "app"
	DefaultVersion         = "0.0.1"
	DefaultLicence         = "UNLICENCED"
)

// Licences are the license identifiers offered, default first.
var Licences = []string{
	"UNLICENCED", "MIT", "ISC", "Apache-2.0", "GPL-3.0",
	"BSD-2-Clause", "BSD-3-Clause", "AGPL-3.0", "Unlicense",
}

// Templates are the project templates offered, default first.
var Templates = []string{
	TemplateGeneric, TemplateBackend, TemplateFrontend, TemplateFullStack, TemplateCLI,
}

// Dialects are the database engines Sequelize can be configured for.
var Dialects = []string{DialectSQLite, DialectMySQL}

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

var errVersion = errors.New("Enter a valid version (e.g., 1.0.0)")

// ValidateVersion accepts exactly three dot-separated non-negative integers.
func ValidateVersion(v string) error {
	if !versionPattern.MatchString(v) {
		return errVersion
	}
	return nil
}

// Questions returns the main question sequence for a project at projectPath.
func Questions(projectPath string) []prompt.Question {
	return []prompt.Question{
		prompt.Input(KeyName, "Project Name:", filepath.Base(projectPath)),
		prompt.Input(KeyDebug, "Project Debug Identifier:", DefaultDebugIdentifier),
		prompt.Input(KeyVersion, "Version:", DefaultVersion).WithValidate(ValidateVersion),
		prompt.Select(KeyType, "Module Type:", prompt.Choices(ModuleCommonJS, ModuleESM), ModuleCommonJS),
		prompt.Select(KeyVisibility, "Project Visibility:", prompt.Choices(VisibilityPrivate, VisibilityPublic), VisibilityPrivate),
		prompt.Input(KeyDescription, "Description:", ""),
		prompt.Input(KeyAuthor, "Author:", ""),
		prompt.Select(KeyLicence, "License:", prompt.Choices(Licences...), DefaultLicence),
		prompt.Select(KeyTemplate, "Template:", prompt.Choices(Templates...), TemplateGeneric),
		prompt.MultiSelect(KeyFeatures, "Select additional project features:", []prompt.Choice{
			{Label: "Sequelize", Value: FeatureSequelize},
			{Label: "Jest", Value: FeatureJest},
		}),
	}
}

// DatabaseQuestions returns the follow-up asked when Sequelize is selected.
func DatabaseQuestions() []prompt.Question {
	dialects := prompt.Choices(Dialects...)
	return []prompt.Question{
		prompt.Select(KeyDevelopmentDB, "Development Database:", dialects, DialectSQLite),
		prompt.Select(KeyTestDB, "Test Database:", dialects, DialectSQLite),
		prompt.Select(KeyProductionDB, "Production Database:", dialects, DialectMySQL),
	}
}
