package report

import "golang.org/x/text/language"

// Labels holds the fixed wording of a report.
type Labels struct {
	Currency       string
	Settled        string
	Unsettled      string
	GroupHeader    string // %s: description
	Date           string // %s: date
	Share          string // %s: amount
	Members        string
	FullTitle      string // %s: app name
	Summary        string
	Owes           string // %s: name, %s: amount
	IsOwed         string // %s: name, %s: amount
	Details        string
	NoTransactions string
}

var persian = Labels{
	Currency:       "تومان",
	Settled:        "تسویه شده",
	Unsettled:      "تسویه نشده",
	GroupHeader:    "گزارش گروه هزینه: *%s*",
	Date:           "🗓️ *تاریخ:* %s",
	Share:          "💰 *سهم هر نفر:* %s",
	Members:        "--- اعضا ---",
	FullTitle:      "گزارش کلی هزینه‌ها - %s",
	Summary:        "--- خلاصه حساب ---",
	Owes:           "🔴 %s: %s بدهکار",
	IsOwed:         "🟢 %s: %s بستانکار",
	Details:        "--- جزئیات تراکنش‌ها ---",
	NoTransactions: "هیچ رکوردی برای نمایش وجود ندارد.",
}

var english = Labels{
	Currency:       "Toman",
	Settled:        "settled",
	Unsettled:      "unsettled",
	GroupHeader:    "Expense group: *%s*",
	Date:           "🗓️ *Date:* %s",
	Share:          "💰 *Per person:* %s",
	Members:        "--- Members ---",
	FullTitle:      "Expense report - %s",
	Summary:        "--- Balances ---",
	Owes:           "🔴 %s: owes %s",
	IsOwed:         "🟢 %s: is owed %s",
	Details:        "--- Transactions ---",
	NoTransactions: "No records to show.",
}

// labelsFor picks Persian wording for Persian locales and English otherwise.
func labelsFor(tag language.Tag) Labels {
	if base, _ := tag.Base(); base.String() == "fa" {
		return persian
	}
	return english
}
