package parser

import (
	"fmt"

	"github.com/ua-parser/uap-go/uaparser"
)

type uapParser struct {
	p *uaparser.Parser
}

// newUAP loads the bundled regex database, or the one at regexesPath.
func newUAP(regexesPath string) (*uapParser, error) {
	if regexesPath == "" {
		return &uapParser{p: uaparser.NewFromSaved()}, nil
	}

	p, err := uaparser.New(regexesPath)
	if err != nil {
		return nil, fmt.Errorf("loading regexes from %s: %w", regexesPath, err)
	}
	return &uapParser{p: p}, nil
}

func (u *uapParser) Parse(ua string) Result {
	c := u.p.Parse(ua)

	var r Result
	if c.UserAgent != nil {
		r.Browser = c.UserAgent.Family
	}
	if c.Os != nil {
		r.OS = c.Os.Family
	}
	return r
}
