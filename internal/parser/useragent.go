package parser

import "github.com/mssola/useragent"

type userAgentParser struct {
	ua useragent.UserAgent
}

func newUserAgent() *userAgentParser {
	return &userAgentParser{}
}

func (p *userAgentParser) Parse(ua string) Result {
	p.ua.Parse(ua)
	browser, _ := p.ua.Browser()

	return Result{
		Browser: browser,
		OS:      p.ua.OSInfo().Name,
	}
}
