package stocks

// companyNames covers the symbols that show up most in scored market news.
// Anything else gets the generic "<SYMBOL> Corporation" fallback.
var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"TSLA":  "Tesla, Inc.",
	"NVDA":  "NVIDIA Corporation",
	"MSFT":  "Microsoft Corporation",
	"GOOGL": "Alphabet Inc.",
	"AMZN":  "Amazon.com, Inc.",
	"META":  "Meta Platforms, Inc.",
	"NFLX":  "Netflix, Inc.",
	"AMD":   "Advanced Micro Devices, Inc.",
	"CRM":   "Salesforce, Inc.",
	"ORCL":  "Oracle Corporation",
	"GLD":   "SPDR Gold Trust",
	"IAU":   "iShares Gold Trust",
	"FNMA":  "Federal National Mortgage Association",
	"BABA":  "Alibaba Group Holding Limited",
	"SFTBY": "SoftBank Group Corp.",
	"SPX":   "S&P 500 Index",
	"COMP":  "NASDAQ Composite",
	"DJI":   "Dow Jones Industrial Average",
	"DJIA":  "Dow Jones Industrial Average",
	"HSI":   "Hang Seng Index",
	"N225":  "Nikkei 225",
	"KOSPI": "KOSPI Index",
	"SSNLF": "Samsung Electronics Co., Ltd.",
	"STLA":  "Stellantis N.V.",
	"STOXX": "STOXX Europe 600",
	"DAX":   "DAX Index",
	"FTSE":  "FTSE 100",
	"ASML":  "ASML Holding N.V.",
	"MU":    "Micron Technology, Inc.",
	"WBD":   "Warner Bros. Discovery, Inc.",
	"LYV":   "Live Nation Entertainment, Inc.",
	"WDC":   "Western Digital Corporation",
	"US10Y": "10-Year Treasury Note",
}

// CompanyName resolves a display name for a symbol.
func CompanyName(symbol string) string {
	if name, ok := companyNames[symbol]; ok {
		return name
	}
	return symbol + " Corporation"
}
