package models

// UserSchema is the column layout of users.csv.
var UserSchema = Schema{
	{Name: "nick", Kind: KindString},
	{Name: "timezone", Kind: KindString},
	{Name: "points", Kind: KindInt},
	{Name: "notifications", Kind: KindString},
}

// User is a member of the betting league.
type User struct {
	Nick          string `json:"nick"`
	Timezone      string `json:"timezone"`
	Points        int    `json:"points"`
	Notifications string `json:"notifications"`
}

// ParseUser builds a User from one users.csv line.
func ParseUser(line string) (User, error) {
	v, err := UserSchema.Parse(line)
	if err != nil {
		return User{}, err
	}
	return User{
		Nick:          v.String("nick"),
		Timezone:      v.String("timezone"),
		Points:        v.Int("points"),
		Notifications: v.String("notifications"),
	}, nil
}

// Line renders u in users.csv layout.
func (u User) Line() string {
	return UserSchema.Format(NewValues().
		SetString("nick", u.Nick).
		SetString("timezone", u.Timezone).
		SetInt("points", u.Points).
		SetString("notifications", u.Notifications))
}
