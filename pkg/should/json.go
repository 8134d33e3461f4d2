package should

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"digital.vasic.expectations/pkg/expect"
)

// BeValidJSON expects a string holding a well-formed JSON
// document.
func BeValidJSON() expect.Expectation[string] {
	return expect.Func[string](func(actual string) expect.Result {
		if gjson.Valid(actual) {
			return expect.Pass()
		}
		return invalidJSON(actual)
	})
}

func invalidJSON(actual string) expect.Result {
	return expect.Failf(
		"Expectation failed (valid JSON)\n  actual: %q", actual,
	)
}

func lookupJSON(path string) func(string) (gjson.Result, expect.Result) {
	return func(actual string) (gjson.Result, expect.Result) {
		if !gjson.Valid(actual) {
			return gjson.Result{}, invalidJSON(actual)
		}
		r := gjson.Get(actual, path)
		if !r.Exists() {
			return r, expect.Failf(
				"Expectation failed (JSON path exists)\npath: `%s`\njson: `%s`",
				path, actual,
			)
		}
		return r, expect.Pass()
	}
}

// HaveJSONPath expects a JSON document in which path (gjson
// syntax) exists, and checks the selected value against the
// expectations added by configure.
func HaveJSONPath(
	path string,
	configure func(*expect.List[gjson.Result]) *expect.List[gjson.Result],
) expect.Expectation[string] {
	return expect.Unwrap(lookupJSON(path), configure)
}

// HaveJSONString is HaveJSONPath with the selected value
// rendered as a string: JSON strings unquoted, other values in
// their raw JSON form.
func HaveJSONString(
	path string,
	configure func(*expect.List[string]) *expect.List[string],
) expect.Expectation[string] {
	lookup := lookupJSON(path)
	return expect.Unwrap(func(actual string) (string, expect.Result) {
		r, verdict := lookup(actual)
		return r.String(), verdict
	}, configure)
}

// MatchJSONSchema expects a JSON document valid under schema.
// A schema that does not compile fails every check.
func MatchJSONSchema(schema string) expect.Expectation[string] {
	compiled, err := gojsonschema.NewSchema(
		gojsonschema.NewStringLoader(schema),
	)

	return expect.Func[string](func(actual string) expect.Result {
		if err != nil {
			return expect.Failf("Invalid JSON schema: %v", err)
		}

		result, verr := compiled.Validate(
			gojsonschema.NewStringLoader(actual),
		)
		if verr != nil {
			return expect.Failf(
				"Expectation failed (valid JSON)\n  actual: %q\n  reason: %v",
				actual, verr,
			)
		}
		if result.Valid() {
			return expect.Pass()
		}

		var b strings.Builder
		b.WriteString("Expectation failed (JSON matches schema)")
		for _, e := range result.Errors() {
			b.WriteString("\n- ")
			b.WriteString(e.String())
		}
		return expect.Fail(b.String())
	})
}
