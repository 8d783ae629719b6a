package profile

// Gender: "" significa sin especificar.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "男性"
	GenderFemale      Gender = "女性"
	GenderOther       Gender = "その他"
)

const (
	MinAge = 0
	MaxAge = 120
)

// Profile es un registro único; se sobrescribe completo al guardar.
type Profile struct {
	FullName string `json:"full_name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   Gender `json:"gender"`
	Region   string `json:"region"` // prefectura o "" (sin especificar)
}

func Genders() []Gender {
	return []Gender{GenderUnspecified, GenderMale, GenderFemale, GenderOther}
}

func (g Gender) Valid() bool {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
