package ocrprompt

import "strings"

// Format selects the output structure requested from the downstream model.
type Format string

const (
	FormatPlainText Format = "plain_text"
	FormatHTML      Format = "html"
	FormatJSON      Format = "json"
	FormatRTF       Format = "rtf"
	FormatXML       Format = "xml"
	FormatLaTeX     Format = "latex"
)

// InvalidFormatText is substituted for the format block when the format is not known.
const InvalidFormatText = "Invalid format type specified."

var formats = []Format{
	FormatPlainText,
	FormatHTML,
	FormatJSON,
	FormatRTF,
	FormatXML,
	FormatLaTeX,
}

var formatInstructions = map[Format]string{
	FormatPlainText: "Output the extracted content as plain text. Use line breaks to separate paragraphs.",
	FormatHTML: "Output the content as valid, well-structured HTML. Use semantic tags " +
		"to represent elements: <h1>, <h2>, etc., for headings; <p> for paragraphs; " +
		"<ul> and <li> for bullet points; <table>, <tr>, and <td> for tables. " +
		"Ensure proper nesting and closing of tags.",
	FormatJSON: "Output the content as a structured JSON object. Use keys to represent " +
		"content types (e.g., 'title', 'paragraph', 'list', 'table'). For lists, " +
		"use arrays to group items. For tables, use an array of objects, where " +
		"each object represents a row.",
	FormatRTF: "Output the content as an RTF document. Use RTF tags to represent formatting: " +
		`\b for bold (e.g., headings), \i for italics, \par for paragraphs, ` +
		`\listtext for bullet points, and \trowd and \cell for tables. Ensure ` +
		"compatibility with standard RTF readers.",
	FormatXML: "Output the content as a well-formed XML document. Use custom tags to " +
		"represent content types (e.g., <title>, <paragraph>, <list>, <table>). " +
		"For lists, use nested <item> tags. For tables, use <row> and <cell> tags.",
	FormatLaTeX: "Output the content as a LaTeX document. Use LaTeX commands to represent " +
		`content elements: \section{} and \subsection{} for headings, \textbf{} ` +
		`for bold text, \begin{itemize} and \item for bullet points, and ` +
		`\begin{table} with \hline for tables. Ensure mathematical expressions ` +
		"are properly formatted using math mode (e.g., $...$ for inline math and " +
		`\[ ... \] for display math).`,
}

// Formats returns the supported formats in declaration order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Instruction returns the format block for f.
func Instruction(f Format) (string, bool) {
	text, ok := formatInstructions[f]
	return text, ok
}

// Known reports whether f has a format block.
func (f Format) Known() bool {
	_, ok := formatInstructions[f]
	return ok
}

// ParseFormat normalizes user input such as "Plain Text" or "plain-text".
// Unknown input is returned unchanged together with false.
func ParseFormat(s string) (Format, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if f := Format(norm); f.Known() {
		return f, true
	}
	return Format(s), false
}
