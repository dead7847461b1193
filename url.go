// url.go emits the canonical neofood.club query string for a round and an
// optional portfolio. The format is byte-exact wire surface: parameter
// order is fixed and the full-payload embed is base64url without padding.

package nfc

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const urlDomain = "https://neofood.club"

// MakeURL renders the round (and portfolio, when given) as a shareable
// URL. With includeDomain false only the path and query are emitted; with
// allData true the whole round payload is embedded under the d parameter.
func (f *NeoFoodClub) MakeURL(p *Portfolio, includeDomain, allData bool) (string, error) {
	var url strings.Builder
	if includeDomain {
		url.WriteString(urlDomain)
	}
	fmt.Fprintf(&url, "/?round=%d", f.Round())

	if p != nil {
		url.WriteString("&b=")
		url.WriteString(p.BetsHash())
		if p.Amounts != nil {
			url.WriteString("&a=")
			url.WriteString(p.AmountsHash())
		}
	}
	if f.betAmount != nil {
		fmt.Fprintf(&url, "&bet_amount=%d", *f.betAmount)
	}
	if allData {
		payload, err := f.ToJSON()
		if err != nil {
			return "", err
		}
		url.WriteString("&d=")
		url.WriteString(base64.RawURLEncoding.EncodeToString(payload))
	}

	return url.String(), nil
}
