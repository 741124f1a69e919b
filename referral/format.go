package referral

import (
	"fmt"
	"strings"
)

// DisplayName выбирает имя узла: «Имя Фамилия», иначе только имя,
// иначе часть email до «@».
func DisplayName(u ReferralUser) string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		if at := strings.IndexByte(u.Email, '@'); at > 0 {
			return u.Email[:at]
		}
		return u.Email
	}
}

// PluralReferrals склоняет «реферал» по числу: 1 реферал, 2 реферала,
// 5 рефералов, 11 рефералов.
func PluralReferrals(n int) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 19:
		return "рефералов"
	case n%10 == 1:
		return "реферал"
	case n%10 >= 2 && n%10 <= 4:
		return "реферала"
	default:
		return "рефералов"
	}
}

// FormatMoney форматирует сумму в рублях с разделением тысяч: «12 345,60 ₽».
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 { // перенос после округления
		whole++
		cents -= 100
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s,%02d ₽", b.String(), cents)
}
