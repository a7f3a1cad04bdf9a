package response

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	jsoniter "github.com/json-iterator/go"

	"github.com/tbckr/cnam/internal/apperr"
	"github.com/tbckr/cnam/internal/cnam"
	"github.com/tbckr/cnam/internal/output"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	xmlRoot   = "object"
	xmlCNAM   = "cnam"
	xmlNumber = "number"
)

// apiObject is the JSON body returned for format=json.
type apiObject struct {
	CNAM   *string `json:"cnam"`
	Number *string `json:"number"`
}

// Parse decodes body according to format. number is the requested phone number;
// it fills Result.Number for text bodies, which do not echo it.
func Parse(format cnam.Format, number, body string) (*Result, error) {
	switch format {
	case cnam.FormatText:
		return ParseText(number, body), nil
	case cnam.FormatJSON:
		return ParseJSON(body)
	case cnam.FormatXML:
		return ParseXML(body)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", apperr.ErrInvalidInput, string(format))
	}
}

// ParseText treats the whole body as the caller name.
func ParseText(number, body string) *Result {
	return &Result{
		Number: number,
		CNAM:   output.Sanitize(body),
		Format: cnam.FormatText,
		Raw:    body,
	}
}

// ParseJSON decodes a format=json body. Both cnam and number must be present.
func ParseJSON(body string) (*Result, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: empty json body", apperr.ErrMalformedResponse)
	}
	var obj apiObject
	if err := jsonAPI.UnmarshalFromString(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: decoding json: %s", apperr.ErrMalformedResponse, err)
	}
	if obj.CNAM == nil || obj.Number == nil {
		return nil, fmt.Errorf("%w: json object must contain %q and %q", apperr.ErrMalformedResponse, xmlCNAM, xmlNumber)
	}
	return &Result{
		Number: output.Sanitize(*obj.Number),
		CNAM:   output.Sanitize(*obj.CNAM),
		Format: cnam.FormatJSON,
		Raw:    body,
	}, nil
}

// ParseXML decodes a format=xml body. The root element must be <object> with
// exactly two element children, <cnam> followed by <number>.
func ParseXML(body string) (*Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, fmt.Errorf("%w: decoding xml: %s", apperr.ErrMalformedResponse, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: xml has no root element", apperr.ErrMalformedResponse)
	}
	if root.Tag != xmlRoot {
		return nil, fmt.Errorf("%w: xml root is <%s>, want <%s>", apperr.ErrMalformedResponse, root.Tag, xmlRoot)
	}
	children := root.ChildElements()
	if len(children) != 2 {
		return nil, fmt.Errorf("%w: <%s> has %d child elements, want 2", apperr.ErrMalformedResponse, xmlRoot, len(children))
	}
	if children[0].Tag != xmlCNAM || children[1].Tag != xmlNumber {
		return nil, fmt.Errorf("%w: <%s> children are <%s>,<%s>, want <%s>,<%s>",
			apperr.ErrMalformedResponse, xmlRoot, children[0].Tag, children[1].Tag, xmlCNAM, xmlNumber)
	}
	return &Result{
		Number: output.Sanitize(strings.TrimSpace(children[1].Text())),
		CNAM:   output.Sanitize(strings.TrimSpace(children[0].Text())),
		Format: cnam.FormatXML,
		Raw:    body,
	}, nil
}
