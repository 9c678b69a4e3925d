// Package css reads class rules from simple stylesheets and turns their
// declarations into text styles.
package css

import (
	"bytes"
	"errors"
	"io"
	"maps"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses stylesheets into class declarations. Only plain class
// selectors (".name", optionally grouped with commas) are kept, everything
// else is skipped with a warning.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css")}
}

// ParseClasses is a shortcut for NewParser(log).Parse(data).
func ParseClasses(data []byte, log *zap.Logger) (Classes, error) {
	classes, _, err := NewParser(log).Parse(data)
	return classes, err
}

// Parse returns classes defined in data and warnings about rules that were
// ignored. Repeated rules for the same class are merged, later properties
// win. On syntax error classes parsed so far are returned with the error.
func (p *Parser) Parse(data []byte, source ...string) (Classes, []string, error) {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	classes := make(Classes)
	var warnings []string

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return classes, warnings, err
			}
			return classes, warnings, nil

		case css.BeginAtRuleGrammar:
			warnings = append(warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.ByteString("rule", data))
			skipBlock(parser)

		case css.AtRuleGrammar:
			warnings = append(warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.ByteString("rule", data))

		case css.BeginRulesetGrammar:
			selectors := splitSelectors(data, parser.Values())
			props := parseDeclarations(parser)
			for _, sel := range selectors {
				name, ok := className(sel)
				if !ok {
					warnings = append(warnings, "unsupported selector: "+sel)
					p.log.Debug("Skipping selector", zap.String("selector", sel))
					continue
				}
				if cur, exists := classes[name]; exists {
					maps.Copy(cur, props)
					continue
				}
				classes[name] = maps.Clone(props)
			}
		}
	}
}

func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// className accepts ".name" only.
func className(sel string) (string, bool) {
	name, ok := strings.CutPrefix(sel, ".")
	if !ok || name == "" || strings.ContainsAny(name, ".:[]>+~ \t\n*#") {
		return "", false
	}
	return name, true
}

func parseDeclarations(parser *css.Parser) Declarations {
	props := make(Declarations)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props
		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				props[strings.ToLower(string(data))] = parseValue(values)
			}
		}
	}
}

func parseValue(tokens []css.Token) Value {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	val := Value{Raw: strings.TrimSpace(strings.Join(parts, ""))}

	significant := 0
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			significant++
		}
	}
	if significant != 1 {
		val.Keyword = val.Raw
		return val
	}

	for _, t := range tokens {
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		}
	}
	return val
}

func parseDimension(s string) (float64, string) {
	end := 0
	for i, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+' {
			break
		}
		end = i + 1
	}
	if end == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:end], 64)
	return num, strings.ToLower(s[end:])
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func skipBlock(parser *css.Parser) {
	for depth := 1; depth > 0; {
		switch gt, _, _ := parser.Next(); gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
