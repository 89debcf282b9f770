package plant

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/greenthumb/internal/occurrence"
	"github.com/nibzard/greenthumb/internal/season"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location, e.g. "[0].regimen.soilChange"
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath is a JSON Schema file used instead of the bundled schema.
	SchemaPath string
	// Strict turns schema problems (missing or broken schema file) into
	// errors instead of warnings.
	Strict bool
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool    // true if JSON Schema validation was performed
	Plants     []Plant // decoded plants, nil if the document did not parse
}

// Err returns the validation errors joined, or nil when valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return errors.Join(r.Errors...)
}

func (r *ValidationResult) fail(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

func (r *ValidationResult) warn(strict bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if strict {
		r.fail(errors.New(msg))
		return
	}
	r.Warnings = append(r.Warnings, msg)
}

// LoadValidated reads and validates the plant file at path. The returned
// error is non-nil when the file cannot be read or is invalid; the result
// is still returned for inspection in the latter case.
func LoadValidated(path string, opts ValidationOptions) ([]Plant, *ValidationResult, error) {
	data, err := Read(path)
	if err != nil {
		return nil, nil, err
	}
	result := Validate(data, opts)
	if err := result.Err(); err != nil {
		return nil, result, fmt.Errorf("invalid plant file %s: %w", path, err)
	}
	return result.Plants, result, nil
}

// Validate validates a raw plant document: first against the JSON Schema,
// then the decoded plants against the struct rules.
func Validate(data []byte, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	validateWithSchema(result, data, opts)

	plants, err := Decode(data)
	if err != nil {
		result.fail(&ValidationError{Err: err})
		return result
	}
	result.Plants = plants

	for i := range plants {
		for _, err := range ValidatePlant(&plants[i]) {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Path = fmt.Sprintf("[%d]%s", i, ve.Path)
			}
			result.fail(err)
		}
	}
	return result
}

var bundledCompiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := newCompiler()
	if err := compiler.AddResource(SchemaURL, strings.NewReader(bundledSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(SchemaURL)
})

func newCompiler() *jsonschema.Compiler {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	return compiler
}

// loadSchema compiles the configured schema file, or the bundled schema when
// none is configured or the file is unusable.
func loadSchema(result *ValidationResult, opts ValidationOptions) *jsonschema.Schema {
	if opts.SchemaPath != "" {
		schema, err := compileSchemaFile(opts.SchemaPath)
		if err == nil {
			return schema
		}
		result.warn(opts.Strict, "%v, using bundled schema", err)
	}

	schema, err := bundledCompiled()
	if err != nil {
		result.warn(opts.Strict, "bundled schema: %v", err)
		return nil
	}
	return schema
}

func compileSchemaFile(path string) (*jsonschema.Schema, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid schema path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file not found: %s", absPath)
		}
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	schema, err := newCompiler().Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema file: %w", err)
	}
	return schema, nil
}

// validateWithSchema runs JSON Schema validation on the raw document.
// Documents that are not JSON are left for Decode to report.
func validateWithSchema(result *ValidationResult, data []byte, opts ValidationOptions) {
	schema := loadSchema(result, opts)
	if schema == nil {
		return
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return
	}

	result.UsedSchema = true
	if err := schema.Validate(normalizeKeys(doc)); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts "/0/regimen/watering/1" to
// "[0].regimen.watering[1]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// normalizeKeys rewrites object keys that match a plant field name in a
// different case to the declared spelling, so the schema sees the document
// the same way Decode does. An exact match wins over a case variant.
func normalizeKeys(v any) any {
	switch v := v.(type) {
	case map[string]any:
		keys := canonicalKeys()
		out := make(map[string]any, len(v))
		for k, val := range v {
			if canon, ok := keys[strings.ToLower(k)]; ok && canon != k {
				if _, exact := v[canon]; !exact {
					k = canon
				}
			}
			out[k] = normalizeKeys(val)
		}
		return out
	case []any:
		for i := range v {
			v[i] = normalizeKeys(v[i])
		}
		return v
	}
	return v
}

// canonicalKeys maps the lower-cased JSON names of the plant types to their
// declared spelling.
var canonicalKeys = sync.OnceValue(func() map[string]string {
	keys := make(map[string]string)
	collectKeys(reflect.TypeOf(Plant{}), keys)
	return keys
})

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

func collectKeys(t reflect.Type, keys map[string]string) {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonFieldName(f)
		if name == "" {
			continue
		}
		keys[strings.ToLower(name)] = name
		collectKeys(f.Type, keys)
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("season", validateSeason)
	validate.RegisterStructValidation(validateOccurrence, occurrence.Occurrence{})
}

// ValidatePlant checks the struct rules of a decoded plant. Paths of the
// returned ValidationErrors are relative to the plant, e.g. ".regimen.soilChange".
func ValidatePlant(p *Plant) []error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{&ValidationError{Err: err}}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{
			Path: namespacePath(fe.Namespace()),
			Err:  errors.New(ruleMessage(fe)),
		})
	}
	return errs
}

// namespacePath drops the leading struct name from a validator namespace.
func namespacePath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i:]
	}
	return ""
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing required field"
	case "season":
		return fmt.Sprintf("invalid season %v", fe.Value())
	case "occurrence":
		return fmt.Sprintf("invalid occurrence %v", fe.Value())
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateSeason(fl validator.FieldLevel) bool {
	return season.Season(fl.Field().Int()).Valid()
}

func validateOccurrence(sl validator.StructLevel) {
	o := sl.Current().Interface().(occurrence.Occurrence)
	switch {
	case o.IsZero():
		sl.ReportError(o.Times, "times", "Times", "required", "")
	case o.Times < 1 || o.Times > occurrence.MaxTimes:
		sl.ReportError(o.Times, "times", "Times", "occurrence", "")
	case !o.Window.Valid():
		sl.ReportError(o.Window, "window", "Window", "occurrence", "")
	}
}
