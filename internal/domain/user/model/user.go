package model

import "net/url"

// User 用户模型
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"` // 路由键，全局唯一
	ProfileImage string `json:"profileImage,omitempty"`
	CoverImage   string `json:"coverImage,omitempty"`
	Bio          string `json:"bio"`
	Followers    int    `json:"followers"`
	Following    int    `json:"following"`

	// IsFollowing is viewer-relative. nil means unknown or not applicable
	// (e.g. the viewer's own profile), which is distinct from false.
	IsFollowing *bool `json:"isFollowing,omitempty"`
}

// FallbackAvatarURL is the placeholder used when ProfileImage fails to
// load: an initials avatar keyed by the URL-encoded display name.
func (u *User) FallbackAvatarURL() string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(u.Name) + "&background=random"
}
