// Package parser decodes dotnet audit reports into model.Document values.
//
// The report is first decoded into a loosely typed tree and then converted
// with model.FromTree, so missing or oddly typed fields never cause an error.
// Only input that is not a well-formed document fails, with an
// *InputFormatError.
//
// Supported formats:
//   - json: the output of `dotnet list package --vulnerable --format json`
//   - yaml: the same structure written as YAML (JSON is also valid YAML)
//   - auto: json when the input starts with '{' or '[', otherwise yaml
package parser
