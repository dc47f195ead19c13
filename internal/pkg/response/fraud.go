package response

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
)

// RuleParameter is a vendor specific value attached to a triggered rule
type RuleParameter struct {
	Num   int
	Name  string
	Type  string
	Value string
}

// Rule is one fraud filter rule that fired
type Rule struct {
	Num              int
	RuleID           string
	RuleAlias        string
	RuleDescription  string
	Action           string
	TriggeredMessage string
	Parameters       []RuleParameter
}

// FraudResponse carries the fraud filter results of both filter passes
type FraudResponse struct {
	PreFpsMsg  string
	PostFpsMsg string
	PreRules   []Rule
	PostRules  []Rule
}

func (f FraudResponse) clone() FraudResponse {
	f.PreRules = cloneRules(f.PreRules)
	f.PostRules = cloneRules(f.PostRules)
	return f
}

func cloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Parameters = append([]RuleParameter(nil), r.Parameters...)
		out[i] = r
	}
	return out
}

type xmlValue struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type xmlRuleParameter struct {
	Num   int      `xml:"num,attr"`
	Name  string   `xml:"name"`
	Value xmlValue `xml:"value"`
}

type xmlRule struct {
	Num              int                `xml:"num,attr"`
	RuleID           string             `xml:"ruleid"`
	RuleAlias        string             `xml:"rulealias"`
	RuleDescription  string             `xml:"ruledescription"`
	Action           string             `xml:"action"`
	TriggeredMessage string             `xml:"triggeredmessage"`
	Parameters       []xmlRuleParameter `xml:"rulevendorparms>ruleparameter"`
}

// fpsDocument accepts both a bare <triggeredRules> root and one wrapped in
// an outer element such as <XMLData>.
type fpsDocument struct {
	Rules     []xmlRule `xml:"rule"`
	Triggered []xmlRule `xml:"triggeredrules>rule"`
}

// foldNames lower cases every element and attribute name. The gateway
// capitalises rule documents inconsistently between filter versions.
func foldNames(data string) ([]byte, error) {
	var buf bytes.Buffer
	dec := xml.NewDecoder(strings.NewReader(data))
	enc := xml.NewEncoder(&buf)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			start := xml.StartElement{Name: xml.Name{Local: strings.ToLower(t.Name.Local)}}
			for _, a := range t.Attr {
				if a.Name.Space != "" || a.Name.Local == "xmlns" {
					continue
				}
				start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: strings.ToLower(a.Name.Local)}, Value: a.Value})
			}
			err = enc.EncodeToken(start)
		case xml.EndElement:
			err = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: strings.ToLower(t.Name.Local)}})
		case xml.CharData:
			err = enc.EncodeToken(t.Copy())
		}
		if err != nil {
			return nil, err
		}
	}

	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseRules reads the triggered rules of one fraud XML payload
func ParseRules(data string) ([]Rule, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	folded, err := foldNames(data)
	if err != nil {
		return nil, sdkerr.Codec(sdkerr.CodeFraudXML, "parsing fraud rules", err)
	}

	var doc fpsDocument
	if err := xml.Unmarshal(folded, &doc); err != nil {
		return nil, sdkerr.Codec(sdkerr.CodeFraudXML, "parsing fraud rules", err)
	}

	var rules []Rule
	for _, r := range append(doc.Rules, doc.Triggered...) {
		rule := Rule{
			Num:              r.Num,
			RuleID:           strings.TrimSpace(r.RuleID),
			RuleAlias:        strings.TrimSpace(r.RuleAlias),
			RuleDescription:  strings.TrimSpace(r.RuleDescription),
			Action:           strings.TrimSpace(r.Action),
			TriggeredMessage: strings.TrimSpace(r.TriggeredMessage),
		}
		for _, p := range r.Parameters {
			rule.Parameters = append(rule.Parameters, RuleParameter{
				Num:   p.Num,
				Name:  strings.TrimSpace(p.Name),
				Type:  p.Value.Type,
				Value: strings.TrimSpace(p.Value.Value),
			})
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func newFraudResponse(m *nvp.Map) (FraudResponse, error) {
	f := FraudResponse{
		PreFpsMsg:  m.Take("PREFPSMSG"),
		PostFpsMsg: m.Take("POSTFPSMSG"),
	}

	var err error
	if f.PreRules, err = ParseRules(m.Take("FPS_PREXMLDATA")); err != nil {
		return f, err
	}
	if f.PostRules, err = ParseRules(m.Take("FPS_POSTXMLDATA")); err != nil {
		return f, err
	}
	return f, nil
}
