package enrichment

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

const (
	SourceDirect   = "Direct"
	SourceSearch   = "Search"
	SourceSocial   = "Social"
	SourceAI       = "AI"
	SourceReferral = "Referral"
)

type sourceRule struct {
	source  string
	domains []string
}

// RefererClassifier maps a referer to a traffic source by host.
type RefererClassifier struct {
	rules []sourceRule
}

func NewRefererClassifier() *RefererClassifier {
	return &RefererClassifier{
		// AI before search: gemini.google.com must not match google.com
		rules: []sourceRule{
			{SourceAI, []string{"chatgpt.com", "claude.ai", "gemini.google.com", "perplexity.ai", "copilot.microsoft.com"}},
			{SourceSearch, []string{"google.com", "bing.com", "yahoo.com", "duckduckgo.com", "baidu.com", "yandex.ru", "ecosia.org"}},
			{SourceSocial, []string{
				"facebook.com", "twitter.com", "x.com", "t.co", "instagram.com", "linkedin.com", "pinterest.com",
				"reddit.com", "tiktok.com", "youtube.com", "threads.net", "mastodon.social", "news.ycombinator.com",
			}},
		},
	}
}

// ClassifySource returns Direct for an empty or unparsable referer and
// Referral for any host outside the known lists.
func (c *RefererClassifier) ClassifySource(referer string) string {
	if referer == "" {
		return SourceDirect
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Hostname() == "" {
		return SourceDirect
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")

	for _, rule := range c.rules {
		if lo.ContainsBy(rule.domains, func(d string) bool { return matchesDomain(host, d) }) {
			return rule.source
		}
	}
	return SourceReferral
}

// matchesDomain reports whether host is d or a subdomain of it.
func matchesDomain(host, d string) bool {
	return host == d || strings.HasSuffix(host, "."+d)
}
