package model

type ViewFilter string

const (
	ViewAll     ViewFilter = "all"
	ViewMembers ViewFilter = "members"
	ViewMedia   ViewFilter = "media"
)

// ParseViewFilter 空值视为 all
func ParseViewFilter(s string) (ViewFilter, bool) {
	switch ViewFilter(s) {
	case "", ViewAll:
		return ViewAll, true
	case ViewMembers:
		return ViewMembers, true
	case ViewMedia:
		return ViewMedia, true
	}
	return "", false
}
