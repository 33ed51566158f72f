package services

// blockedCategories are the moderation categories that stop a translation.
// Keys are matched exactly; categories outside this set never block, even
// when the provider marks the text as flagged.
var blockedCategories = []string{
	"hate",
	"hate/threatening",
	"self-harm",
	"self-harm/intent",
	"self-harm/instructions",
	"violence/threat",
	"violence/instructions",
	"sexual/minors",
}

// ShouldBlock reports whether any blocklisted category is true.
func ShouldBlock(categories map[string]bool) bool {
	return len(BlockedBy(categories)) > 0
}

// BlockedBy returns the blocklisted categories that are true, in blocklist order.
func BlockedBy(categories map[string]bool) []string {
	if categories == nil {
		return nil
	}
	var hits []string
	for _, c := range blockedCategories {
		if categories[c] {
			hits = append(hits, c)
		}
	}
	return hits
}
