package sqlguard

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptyStatement     = errors.New("empty statement")
	ErrMultipleStatements = errors.New("multiple statements are not allowed")
	ErrNotReadOnly        = errors.New("only read-only SELECT statements are allowed")
	ErrCommentNotAllowed  = errors.New("comments are not allowed in generated statements")
)

// keywords that mutate data or schema, or smuggle writes into a SELECT.
var forbiddenKeywords = map[string]struct{}{
	"insert":   {},
	"update":   {},
	"delete":   {},
	"drop":     {},
	"alter":    {},
	"create":   {},
	"truncate": {},
	"grant":    {},
	"revoke":   {},
	"copy":     {},
	"vacuum":   {},
	"into":     {},
	"merge":    {},
	"call":     {},
	"do":       {},
	"execute":  {},
}

// Guard validates model-generated SQL before it reaches the database.
// The generation prompt already demands SELECT-only output, but the model is
// not a trust boundary; this is.
type Guard struct {
	MaxRows int
}

func New(maxRows int) *Guard {
	return &Guard{MaxRows: maxRows}
}

// Validate checks that sql is a single read-only SELECT statement and returns
// the statement to execute, wrapped with a row cap when MaxRows > 0.
func (g *Guard) Validate(sql string) (string, error) {
	stmt := strings.TrimSpace(sql)
	stmt = strings.TrimRight(stmt, "; \t\r\n")
	if stmt == "" {
		return "", ErrEmptyStatement
	}

	tokens, err := scan(stmt)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", ErrEmptyStatement
	}

	first := strings.ToLower(tokens[0])
	if first != "select" && first != "with" {
		return "", fmt.Errorf("%w: statement starts with %q", ErrNotReadOnly, tokens[0])
	}

	for _, tok := range tokens {
		if _, bad := forbiddenKeywords[strings.ToLower(tok)]; bad {
			return "", fmt.Errorf("%w: found keyword %q", ErrNotReadOnly, tok)
		}
	}

	if g.MaxRows > 0 {
		stmt = fmt.Sprintf("SELECT * FROM (%s) AS capped_result LIMIT %d", stmt, g.MaxRows)
	}

	return stmt, nil
}

// scan produces the bare-word tokens of stmt, skipping string literals and
// quoted identifiers. A second top-level statement or any comment aborts the
// scan.
func scan(stmt string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(stmt)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\'' || c == '"':
			flush()
			quote := c
			i++
			for i < len(runes) {
				if runes[i] == quote {
					// doubled quote is an escaped quote inside the literal
					if i+1 < len(runes) && runes[i+1] == quote {
						i += 2
						continue
					}
					break
				}
				i++
			}
		case c == ';':
			return nil, ErrMultipleStatements
		case c == '-' && i+1 < len(runes) && runes[i+1] == '-':
			return nil, ErrCommentNotAllowed
		case c == '/' && i+1 < len(runes) && runes[i+1] == '*':
			return nil, ErrCommentNotAllowed
		case unicode.IsLetter(c) || c == '_' || unicode.IsDigit(c):
			current.WriteRune(c)
		default:
			flush()
		}
	}
	flush()

	return tokens, nil
}
