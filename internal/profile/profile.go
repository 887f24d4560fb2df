// Package profile contains the static identity shown on the card.
package profile

import (
	"strings"
	"unicode"
)

const githubBaseURL = "https://github.com/"

type Profile struct {
	Name       string
	Occupation string
	// Username is the GitHub account name used to build the profile link.
	Username string
	// Description is the text alternative for the profile photo.
	Description string
}

// Default returns the built-in card contents.
func Default() Profile {
	return Profile{
		Name:        "Justin Wehrman",
		Occupation:  "Senior Software Engineer",
		Username:    "WehrHaus",
		Description: "Justin Wehrman's Bio Picture",
	}
}

// GitHubURL returns the profile link. The username is passed through as is.
func (p Profile) GitHubURL() string {
	return githubBaseURL + p.Username
}

// Handle is the short link label shown on the card.
func (p Profile) Handle() string {
	return "@" + p.Username
}

// Initials returns up to two upper case initials from the name, used in place of the photo.
func (p Profile) Initials() string {
	return Monogram(p.Name)
}

// Monogram builds up to two upper case letters from the first letter of each word in text.
// Words not starting with a letter are skipped.
func Monogram(text string) string {
	var initials []rune
	for _, part := range strings.Fields(text) {
		first := []rune(part)[0]
		if !unicode.IsLetter(first) {
			continue
		}
		initials = append(initials, unicode.ToUpper(first))
		if len(initials) == 2 {
			break
		}
	}

	if len(initials) == 0 {
		return "?"
	}

	return string(initials)
}
