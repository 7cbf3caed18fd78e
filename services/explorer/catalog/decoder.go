package catalog

// abbreviationDecoder expands the cryptic parts of indicator identifiers into
// readable fragments
var abbreviationDecoder = map[string]string{
	"BOP": "Balance of Payments",
	"BP6": "BPM6",
	"BXSTR": "External Debt",
	"BXSTV": "External Debt Value",
	"SPE": "Special",
	"USD": "US Dollars",
	"EUR": "Euros",
	"GBP": "British Pounds",
	"JPY": "Japanese Yen",
	"XDC": "SDR (Special Drawing Rights)",
	"IARMGB": "Interest Arrears",
	"BFOCDLOF": "Foreign Direct Investment",
	"BMGN": "Monetary Gold",
	"BXSTVBS": "External Debt by Sector",
	"BIPIOPC": "Portfolio Investment",
	"BFOLN": "Financial Derivatives",
	"BFOINLG": "Foreign Investment",
	"BFQINLG": "Financial Account",
	"BFQIN": "Financial Account Inflows",
	"WDI": "World Development Indicators",
	"AG": "Agriculture",
	"CON": "Consumption",
	"FERT": "Fertilizer",
	"ZS": "% of",
	"NY": "National Accounts",
	"GDP": "Gross Domestic Product",
	"MKTP": "Market Prices",
	"CD": "Current USD",
	"PCAP": "Per Capita",
	"KD": "Constant USD",
	"SP": "Population",
	"POP": "Population",
	"TOTL": "Total",
	"FP": "Prices",
	"CPI": "Consumer Price Index",
	"SL": "Labor",
	"UEM": "Unemployment",
	"SE": "Education",
	"PRM": "Primary",
	"CMPT": "Completion Rate",
	"FE": "Female",
	"MA": "Male",
	"SH": "Health",
	"DYN": "Dynamics",
	"LE00": "Life Expectancy",
	"IN": "Indicator",
	"PCT": "Percent",
	"TOT": "Total",
	"AVG": "Average",
	"IDX": "Index",
	"IND": "Industry",
	"MFG": "Manufacturing",
	"SVC": "Services",
	"GOVT": "Government",
	"EXP": "Exports",
	"IMP": "Imports",
	"INV": "Investment",
	"FDI": "Foreign Direct Investment",
	"GNI": "Gross National Income",
	"PPP": "Purchasing Power Parity",
}
