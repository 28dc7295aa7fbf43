package parser

import "github.com/avct/uasurfer"

// surferParser reuses one UserAgent value across calls.
type surferParser struct {
	ua uasurfer.UserAgent
}

func newSurfer() *surferParser {
	return &surferParser{}
}

func (s *surferParser) Parse(ua string) Result {
	s.ua.Reset()
	uasurfer.ParseUserAgent(ua, &s.ua)

	return Result{
		Browser: s.ua.Browser.Name.StringTrimPrefix(),
		OS:      s.ua.OS.Name.StringTrimPrefix(),
	}
}
