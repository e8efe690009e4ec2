package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

const (
	packageSchemaName    = "package.schema.json"
	componentsSchemaName = "components.schema.json"
)

var (
	compiledSchemas = map[string]*jsonschema.Schema{}
	compileOnce     sync.Once
	compileErr      error
	printer         = message.NewPrinter(language.English)
)

// compileSchemas compiles every embedded schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		names := []string{packageSchemaName, componentsSchemaName}
		for _, name := range names {
			raw, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				compileErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add schema resource %s: %w", name, err)
				return
			}
		}
		for _, name := range names {
			sch, err := c.Compile(name)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			compiledSchemas[name] = sch
		}
	})
	return compileErr
}

// validateDocument checks a generated JSON document against a named schema.
func validateDocument(schemaName string, data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, schemaName, err)
	}

	err = compiledSchemas[schemaName].Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, schemaName, err)
	}
	var issues []string
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, ve.Error())
	}
	return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, schemaName, strings.Join(issues, "; "))
}

// collectIssues walks the error tree and records leaf errors as
// "/instance/path: message".
func collectIssues(ve *jsonschema.ValidationError, issues *[]string) {
	if len(ve.Causes) == 0 {
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		*issues = append(*issues, "/"+strings.Join(ve.InstanceLocation, "/")+": "+msg)
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}
