package catalog

import "github.com/BquantFinance/world-data-bank/services/explorer/common"

var databaseDescriptors = map[string]common.DatabaseDescriptor{
	"BS_BTI": {
		ID:             "BS_BTI",
		Name:           "Bertelsmann Transformation Index",
		Organization:   "Bertelsmann Stiftung",
		Themes:         []string{"Governance", "Democracy", "Development"},
		Description:    "Political and economic transformation in developing countries",
		IndicatorCount: 76,
	},
	"BS_SGI": {
		ID:             "BS_SGI",
		Name:           "Sustainable Governance Indicators",
		Organization:   "Bertelsmann Stiftung",
		Themes:         []string{"Governance", "Sustainability", "Policy"},
		Description:    "Quality of governance in OECD countries",
		IndicatorCount: 193,
	},
	"FAO_AS": {
		ID:             "FAO_AS",
		Name:           "Agriculture Statistics",
		Organization:   "FAO",
		Themes:         []string{"Agriculture", "Food Security", "Environment"},
		Description:    "Agricultural production, trade, and food security indicators",
		IndicatorCount: 124,
	},
	"FH_FIW": {
		ID:             "FH_FIW",
		Name:           "Freedom in the World",
		Organization:   "Freedom House",
		Themes:         []string{"Governance", "Democracy", "Civil Liberties"},
		Description:    "Political rights and civil liberties assessments",
		IndicatorCount: 38,
	},
	"GEM_APS": {
		ID:             "GEM_APS",
		Name:           "Adult Population Survey",
		Organization:   "Global Entrepreneurship Monitor",
		Themes:         []string{"Entrepreneurship", "Business", "Innovation"},
		Description:    "Entrepreneurial activity and attitudes",
		IndicatorCount: 15,
	},
	"GEM_NES": {
		ID:             "GEM_NES",
		Name:           "National Expert Survey",
		Organization:   "Global Entrepreneurship Monitor",
		Themes:         []string{"Entrepreneurship", "Business"},
		Description:    "Expert assessments of entrepreneurship conditions",
		IndicatorCount: 12,
	},
	"GI_AII": {
		ID:             "GI_AII",
		Name:           "Global Innovation Index",
		Organization:   "Global Innovation Index",
		Themes:         []string{"Innovation", "Technology", "Economy"},
		Description:    "Innovation capabilities and results across countries",
		IndicatorCount: 114,
	},
	"IDB_INFRALATAM": {
		ID:             "IDB_INFRALATAM",
		Name:           "InfraLatam",
		Organization:   "Inter-American Development Bank",
		Themes:         []string{"Infrastructure", "Transportation", "Energy"},
		Description:    "Infrastructure investment in Latin America",
		IndicatorCount: 3,
	},
	"IFC_GB": {
		ID:             "IFC_GB",
		Name:           "Global Business Environment",
		Organization:   "IFC",
		Themes:         []string{"Business", "Economy", "Regulation"},
		Description:    "Business environment and regulatory quality",
		IndicatorCount: 1,
	},
	"ILO_EMP": {
		ID:             "ILO_EMP",
		Name:           "Employment Statistics",
		Organization:   "ILO",
		Themes:         []string{"Employment", "Labor", "Economy"},
		Description:    "Labor market statistics including employment, unemployment, and wages",
		IndicatorCount: 6,
	},
	"IMF_BOP": {
		ID:             "IMF_BOP",
		Name:           "Balance of Payments",
		Organization:   "IMF",
		Themes:         []string{"Trade", "Finance", "Current Account"},
		Description:    "International transactions including trade balance and capital flows",
		IndicatorCount: 5209,
	},
	"IMF_BOPAGG": {
		ID:             "IMF_BOPAGG",
		Name:           "Balance of Payments Aggregates",
		Organization:   "IMF",
		Themes:         []string{"Trade", "Finance"},
		Description:    "Aggregated balance of payments statistics",
		IndicatorCount: 38,
	},
	"IMF_CDIR": {
		ID:             "IMF_CDIR",
		Name:           "Coordinated Direct Investment",
		Organization:   "IMF",
		Themes:         []string{"Economy", "Finance", "Investment"},
		Description:    "Direct investment positions by country",
		IndicatorCount: 4,
	},
	"IMF_CDIS": {
		ID:             "IMF_CDIS",
		Name:           "Coordinated Direct Investment Survey",
		Organization:   "IMF",
		Themes:         []string{"Economy", "Finance", "Investment"},
		Description:    "Direct investment survey data",
		IndicatorCount: 20,
	},
	"IMF_CPIS": {
		ID:             "IMF_CPIS",
		Name:           "Coordinated Portfolio Investment Survey",
		Organization:   "IMF",
		Themes:         []string{"Economy", "Finance", "Investment"},
		Description:    "Portfolio investment holdings by country",
		IndicatorCount: 50,
	},
	"IMF_ET": {
		ID:             "IMF_ET",
		Name:           "Exchange Rates",
		Organization:   "IMF",
		Themes:         []string{"Economy", "Finance", "Currency"},
		Description:    "Exchange rate data and currency statistics",
		IndicatorCount: 5,
	},
	"IMF_FAS": {
		ID:             "IMF_FAS",
		Name:           "Financial Access Survey",
		Organization:   "IMF",
		Themes:         []string{"Finance", "Financial Inclusion"},
		Description:    "Financial access and inclusion indicators",
		IndicatorCount: 82,
	},
	"IMF_FFS": {
		ID:             "IMF_FFS",
		Name:           "Financial Fragility Survey",
		Organization:   "IMF",
		Themes:         []string{"Finance", "Financial Stability"},
		Description:    "Financial fragility and stability metrics",
		IndicatorCount: 21,
	},
	"IMF_FISCALDECENTRALIZATION": {
		ID:             "IMF_FISCALDECENTRALIZATION",
		Name:           "Fiscal Decentralization",
		Organization:   "IMF",
		Themes:         []string{"Fiscal", "Government", "Public Finance"},
		Description:    "Fiscal decentralization indicators",
		IndicatorCount: 36,
	},
	"IMF_FSI": {
		ID:             "IMF_FSI",
		Name:           "Financial Soundness Indicators",
		Organization:   "IMF",
		Themes:         []string{"Finance", "Banking", "Financial Stability"},
		Description:    "Banking sector health and stability indicators",
		IndicatorCount: 593,
	},
	"IMF_FSIRE": {
		ID:             "IMF_FSIRE",
		Name:           "FSI Regulatory",
		Organization:   "IMF",
		Themes:         []string{"Finance", "Banking", "Regulation"},
		Description:    "Financial soundness regulatory indicators",
		IndicatorCount: 21,
	},
	"IMF_GFSCOFOG": {
		ID:             "IMF_GFSCOFOG",
		Name:           "Government Finance - COFOG",
		Organization:   "IMF",
		Themes:         []string{"Fiscal", "Government"},
		Description:    "Government expenditure by function",
		IndicatorCount: 80,
	},
	"IMF_GFSE": {
		ID:             "IMF_GFSE",
		Name:           "Government Finance Statistics",
		Organization:   "IMF",
		Themes:         []string{"Fiscal", "Government", "Public Finance"},
		Description:    "Government revenue, expenditure, and debt",
		IndicatorCount: 48,
	},
	"IMF_GFSIBS": {
		ID:             "IMF_GFSIBS",
		Name:           "GFS Integrated Balance Sheet",
		Organization:   "IMF",
		Themes:         []string{"Fiscal", "Government"},
		Description:    "Government balance sheet data",
		IndicatorCount: 15,
	},
	"IMF_GFSMAB": {
		ID:             "IMF_GFSMAB",
		Name:           "GFS Main Aggregates",
		Organization:   "IMF",
		Themes:         []string{"Fiscal", "Government"},
		Description:    "Main government finance aggregates",
		IndicatorCount: 70,
	},
	"IMF_GFSR": {
		ID:             "IMF_GFSR",
		Name:           "Global Financial Stability Report",
		Organization:   "IMF",
		Themes:         []string{"Finance", "Financial Stability"},
		Description:    "Global financial stability assessments",
		IndicatorCount: 84,
	},
	"IMF_GFSSSUC": {
		ID:             "IMF_GFSSSUC",
		Name:           "GFS Summary",
		Organization:   "IMF",
		Themes:         []string{"Fiscal", "Government"},
		Description:    "Summary government finance statistics",
		IndicatorCount: 26,
	},
	"IMF_IRFCL": {
		ID:             "IMF_IRFCL",
		Name:           "International Reserves and Foreign Currency",
		Organization:   "IMF",
		Themes:         []string{"Finance", "Reserves", "Currency"},
		Description:    "International reserves and liquidity data",
		IndicatorCount: 120,
	},
	"IMF_PCTOT": {
		ID:             "IMF_PCTOT",
		Name:           "Primary Commodity Prices",
		Organization:   "IMF",
		Themes:         []string{"Economy", "Commodities", "Prices"},
		Description:    "Primary commodity price indices",
		IndicatorCount: 6,
	},
	"IMF_WEO": {
		ID:             "IMF_WEO",
		Name:           "World Economic Outlook",
		Organization:   "IMF",
		Themes:         []string{"Economy", "GDP", "Fiscal Policy", "Forecasts"},
		Description:    "Macroeconomic indicators and projections for 190+ countries",
		IndicatorCount: 44,
	},
	"ITU_DH": {
		ID:             "ITU_DH",
		Name:           "Digital Health",
		Organization:   "ITU",
		Themes:         []string{"Health", "Technology", "Digital"},
		Description:    "Digital health technology indicators",
		IndicatorCount: 39,
	},
	"ITU_GCI": {
		ID:             "ITU_GCI",
		Name:           "ICT Development Index",
		Organization:   "ITU",
		Themes:         []string{"Technology", "Telecommunications", "Innovation"},
		Description:    "ICT development and infrastructure",
		IndicatorCount: 26,
	},
	"ITU_ICT": {
		ID:             "ITU_ICT",
		Name:           "ICT Indicators",
		Organization:   "ITU",
		Themes:         []string{"Technology", "Telecommunications", "Digital"},
		Description:    "Information and communication technology adoption and access",
		IndicatorCount: 10,
	},
	"JRC_EDGAR": {
		ID:             "JRC_EDGAR",
		Name:           "Emissions Database",
		Organization:   "Joint Research Centre",
		Themes:         []string{"Environment", "Climate", "Emissions"},
		Description:    "Greenhouse gas emissions by country and sector",
		IndicatorCount: 10,
	},
	"OECDWBG_PMR": {
		ID:             "OECDWBG_PMR",
		Name:           "Product Market Regulation",
		Organization:   "OECD",
		Themes:         []string{"Economy", "Regulation", "Business"},
		Description:    "Product market regulation indicators",
		IndicatorCount: 33,
	},
	"OECD_BROADBAND": {
		ID:             "OECD_BROADBAND",
		Name:           "Broadband Statistics",
		Organization:   "OECD",
		Themes:         []string{"Technology", "Telecommunications", "Infrastructure"},
		Description:    "Broadband penetration and quality metrics",
		IndicatorCount: 11,
	},
	"OECD_IDD": {
		ID:             "OECD_IDD",
		Name:           "International Development Database",
		Organization:   "OECD",
		Themes:         []string{"Development", "Aid", "Finance"},
		Description:    "Official development assistance and aid flows",
		IndicatorCount: 53,
	},
	"OECD_TIVA": {
		ID:             "OECD_TIVA",
		Name:           "Trade in Value Added",
		Organization:   "OECD",
		Themes:         []string{"Trade", "Economy", "Value Chains"},
		Description:    "Global value chain participation and trade in value added",
		IndicatorCount: 24,
	},
	"OWID_CB": {
		ID:             "OWID_CB",
		Name:           "Our World in Data",
		Organization:   "Our World in Data",
		Themes:         []string{"Research", "Development", "Multiple"},
		Description:    "Research-based development indicators across multiple topics",
		IndicatorCount: 76,
	},
	"POLITY5_PRC": {
		ID:             "POLITY5_PRC",
		Name:           "Polity5 Political Regime",
		Organization:   "Center for Systemic Peace",
		Themes:         []string{"Governance", "Political Systems", "Democracy"},
		Description:    "Political regime characteristics and transitions",
		IndicatorCount: 14,
	},
	"RWB_PFI": {
		ID:             "RWB_PFI",
		Name:           "Press Freedom Index",
		Organization:   "Reporters Without Borders",
		Themes:         []string{"Governance", "Media", "Freedom"},
		Description:    "Press freedom and journalist safety",
		IndicatorCount: 12,
	},
	"UIS_EDSTATS": {
		ID:             "UIS_EDSTATS",
		Name:           "UNESCO Education Statistics",
		Organization:   "UNESCO Institute for Statistics",
		Themes:         []string{"Education", "Literacy", "Skills"},
		Description:    "Detailed education statistics from pre-primary to tertiary",
		IndicatorCount: 41,
	},
	"UNCTAD_DE": {
		ID:             "UNCTAD_DE",
		Name:           "Development Economics",
		Organization:   "UNCTAD",
		Themes:         []string{"Economy", "Development", "Trade"},
		Description:    "Economic development and trade indicators",
		IndicatorCount: 14,
	},
	"UNCTAD_MT": {
		ID:             "UNCTAD_MT",
		Name:           "Maritime Transport",
		Organization:   "UNCTAD",
		Themes:         []string{"Trade", "Transportation", "Logistics"},
		Description:    "Maritime transport and port statistics",
		IndicatorCount: 9,
	},
	"UNDRR_SFM": {
		ID:             "UNDRR_SFM",
		Name:           "Sendai Framework Monitor",
		Organization:   "UN Office for Disaster Risk Reduction",
		Themes:         []string{"Environment", "Disaster Risk", "Resilience"},
		Description:    "Disaster risk reduction indicators",
		IndicatorCount: 36,
	},
	"UNESCO_UIS": {
		ID:             "UNESCO_UIS",
		Name:           "UNESCO Institute for Statistics",
		Organization:   "UNESCO",
		Themes:         []string{"Education", "Science", "Culture", "Communication"},
		Description:    "Education, science, culture and communication statistics",
		IndicatorCount: 2,
	},
	"UNICEF_DW": {
		ID:             "UNICEF_DW",
		Name:           "UNICEF Data Warehouse",
		Organization:   "UNICEF",
		Themes:         []string{"Health", "Education", "Child Welfare", "Nutrition"},
		Description:    "Child-focused development indicators covering health, education, and protection",
		IndicatorCount: 16,
	},
	"UNSD_EI": {
		ID:             "UNSD_EI",
		Name:           "Environment Indicators",
		Organization:   "UN Statistics Division",
		Themes:         []string{"Environment", "Sustainability"},
		Description:    "Environmental and sustainability indicators",
		IndicatorCount: 20,
	},
	"VDEM_CORE": {
		ID:             "VDEM_CORE",
		Name:           "Varieties of Democracy",
		Organization:   "V-Dem Institute",
		Themes:         []string{"Governance", "Democracy", "Political Rights"},
		Description:    "Comprehensive democracy indicators covering electoral, liberal, participatory, deliberative, and egalitarian principles",
		IndicatorCount: 84,
	},
	"WB_BID": {
		ID:             "WB_BID",
		Name:           "Business Intelligence Dashboard",
		Organization:   "World Bank",
		Themes:         []string{"Business", "Economy"},
		Description:    "Business intelligence indicators",
		IndicatorCount: 4,
	},
	"WB_BOOST": {
		ID:             "WB_BOOST",
		Name:           "BOOST Public Expenditure",
		Organization:   "World Bank",
		Themes:         []string{"Fiscal", "Government", "Public Finance"},
		Description:    "Government expenditure data by sector and economic classification",
		IndicatorCount: 232,
	},
	"WB_BPS": {
		ID:             "WB_BPS",
		Name:           "Business Pulse Survey",
		Organization:   "World Bank",
		Themes:         []string{"Business", "Economy", "COVID-19"},
		Description:    "Business impacts from COVID-19 pandemic",
		IndicatorCount: 28,
	},
	"WB_BREADY": {
		ID:             "WB_BREADY",
		Name:           "Business Ready",
		Organization:   "World Bank",
		Themes:         []string{"Business", "Regulation"},
		Description:    "Business regulatory environment indicators",
		IndicatorCount: 3,
	},
	"WB_CCDFS": {
		ID:             "WB_CCDFS",
		Name:           "Climate Change Data and Finance",
		Organization:   "World Bank",
		Themes:         []string{"Climate", "Environment", "Finance"},
		Description:    "Climate change and finance data",
		IndicatorCount: 23,
	},
	"WB_CCKP": {
		ID:             "WB_CCKP",
		Name:           "Climate Change Knowledge Portal",
		Organization:   "World Bank",
		Themes:         []string{"Climate", "Environment"},
		Description:    "Climate change projections and historical data",
		IndicatorCount: 40,
	},
	"WB_CLEAR": {
		ID:             "WB_CLEAR",
		Name:           "Country Learning and Evaluation",
		Organization:   "World Bank",
		Themes:         []string{"Development", "Evaluation"},
		Description:    "Country learning and evaluation indicators",
		IndicatorCount: 93,
	},
	"WB_CPIA": {
		ID:             "WB_CPIA",
		Name:           "Country Policy and Institutional Assessment",
		Organization:   "World Bank",
		Themes:         []string{"Governance", "Policy", "Institutions"},
		Description:    "Policy and institutional quality assessments",
		IndicatorCount: 21,
	},
	"WB_CSC": {
		ID:             "WB_CSC",
		Name:           "Country Statistical Capacity",
		Organization:   "World Bank",
		Themes:         []string{"Statistics", "Data Quality"},
		Description:    "Statistical capacity indicators",
		IndicatorCount: 64,
	},
	"WB_EDSTATS": {
		ID:             "WB_EDSTATS",
		Name:           "Education Statistics",
		Organization:   "World Bank",
		Themes:         []string{"Education", "Enrollment", "Literacy"},
		Description:    "Comprehensive education statistics including enrollment, completion, and learning outcomes",
		IndicatorCount: 1071,
	},
	"WB_EQOSOGI": {
		ID:             "WB_EQOSOGI",
		Name:           "Equity of Opportunity",
		Organization:   "World Bank",
		Themes:         []string{"Social", "Equality", "Opportunity"},
		Description:    "Equity and opportunity indicators",
		IndicatorCount: 6,
	},
	"WB_ES": {
		ID:             "WB_ES",
		Name:           "Enterprise Surveys",
		Organization:   "World Bank",
		Themes:         []string{"Business", "Economy", "Investment"},
		Description:    "Firm-level business environment data",
		IndicatorCount: 540,
	},
	"WB_ESG": {
		ID:             "WB_ESG",
		Name:           "ESG Data",
		Organization:   "World Bank",
		Themes:         []string{"Environment", "Social", "Governance"},
		Description:    "Environmental, social, and governance indicators",
		IndicatorCount: 71,
	},
	"WB_EWSA": {
		ID:             "WB_EWSA",
		Name:           "Early Warning System",
		Organization:   "World Bank",
		Themes:         []string{"Economy", "Crisis", "Risk"},
		Description:    "Economic crisis early warning indicators",
		IndicatorCount: 29,
	},
	"WB_FINDEX": {
		ID:             "WB_FINDEX",
		Name:           "Global Findex Database",
		Organization:   "World Bank",
		Themes:         []string{"Finance", "Financial Inclusion"},
		Description:    "Financial inclusion data covering account ownership, payments, savings, and credit",
		IndicatorCount: 280,
	},
	"WB_FSI": {
		ID:             "WB_FSI",
		Name:           "Financial Sector Indicators",
		Organization:   "World Bank",
		Themes:         []string{"Finance", "Banking"},
		Description:    "Financial sector development indicators",
		IndicatorCount: 63,
	},
	"WB_GIRG": {
		ID:             "WB_GIRG",
		Name:           "Global Identification Challenge",
		Organization:   "World Bank",
		Themes:         []string{"Digital ID", "Governance"},
		Description:    "Data on identification systems and coverage",
		IndicatorCount: 6,
	},
	"WB_GS": {
		ID:             "WB_GS",
		Name:           "Gender Statistics",
		Organization:   "World Bank",
		Themes:         []string{"Gender", "Social", "Equality"},
		Description:    "Gender-disaggregated data across demographics, education, health, and economy",
		IndicatorCount: 363,
	},
	"WB_GTMI": {
		ID:             "WB_GTMI",
		Name:           "Global Trade Monitoring",
		Organization:   "World Bank",
		Themes:         []string{"Trade", "Economy"},
		Description:    "Global trade monitoring indicators",
		IndicatorCount: 58,
	},
	"WB_HCP": {
		ID:             "WB_HCP",
		Name:           "Human Capital Project",
		Organization:   "World Bank",
		Themes:         []string{"Human Capital", "Education", "Health"},
		Description:    "Human capital development indicators",
		IndicatorCount: 133,
	},
	"WB_HNP": {
		ID:             "WB_HNP",
		Name:           "Health Nutrition and Population",
		Organization:   "World Bank",
		Themes:         []string{"Health", "Nutrition", "Demographics"},
		Description:    "Health system performance, disease prevalence, and demographic indicators",
		IndicatorCount: 221,
	},
	"WB_LPI": {
		ID:             "WB_LPI",
		Name:           "Logistics Performance Index",
		Organization:   "World Bank",
		Themes:         []string{"Trade", "Logistics", "Infrastructure"},
		Description:    "Logistics and supply chain performance",
		IndicatorCount: 18,
	},
	"WB_MPO": {
		ID:             "WB_MPO",
		Name:           "Macro Poverty Outlook",
		Organization:   "World Bank",
		Themes:         []string{"Poverty", "Economy", "Forecasts"},
		Description:    "Poverty and economic outlook projections",
		IndicatorCount: 103,
	},
	"WB_RISE": {
		ID:             "WB_RISE",
		Name:           "Regulatory Indicators for Sustainable Energy",
		Organization:   "World Bank",
		Themes:         []string{"Energy", "Regulation", "Sustainability"},
		Description:    "Sustainable energy regulatory framework",
		IndicatorCount: 38,
	},
	"WB_SPI": {
		ID:             "WB_SPI",
		Name:           "Statistical Performance Indicators",
		Organization:   "World Bank",
		Themes:         []string{"Statistics", "Data Quality"},
		Description:    "Statistical performance and capacity indicators",
		IndicatorCount: 71,
	},
	"WB_SSGD": {
		ID:             "WB_SSGD",
		Name:           "Subnational Statistics on Gender",
		Organization:   "World Bank",
		Themes:         []string{"Gender", "Social", "Subnational"},
		Description:    "Subnational gender statistics",
		IndicatorCount: 128,
	},
	"WB_THINK_HAZARD": {
		ID:             "WB_THINK_HAZARD",
		Name:           "ThinkHazard",
		Organization:   "World Bank",
		Themes:         []string{"Environment", "Disaster Risk", "Hazards"},
		Description:    "Natural hazard risk information",
		IndicatorCount: 11,
	},
	"WB_WBL": {
		ID:             "WB_WBL",
		Name:           "Women Business and the Law",
		Organization:   "World Bank",
		Themes:         []string{"Gender", "Business", "Legal Rights"},
		Description:    "Gender equality in business and legal rights",
		IndicatorCount: 49,
	},
	"WB_WDI": {
		ID:             "WB_WDI",
		Name:           "World Development Indicators",
		Organization:   "World Bank",
		Themes:         []string{"Economy", "Demographics", "Education", "Health", "Environment", "Infrastructure"},
		Description:    "Primary World Bank database with 1500+ indicators covering all aspects of development",
		IndicatorCount: 1508,
	},
	"WB_WGI": {
		ID:             "WB_WGI",
		Name:           "Worldwide Governance Indicators",
		Organization:   "World Bank",
		Themes:         []string{"Governance", "Political Stability", "Rule of Law"},
		Description:    "Governance quality indicators across 200+ countries since 1996",
		IndicatorCount: 36,
	},
	"WB_WITS": {
		ID:             "WB_WITS",
		Name:           "World Integrated Trade Solution",
		Organization:   "World Bank",
		Themes:         []string{"Trade", "Economy", "Tariffs"},
		Description:    "International trade statistics, tariffs, and trade agreements",
		IndicatorCount: 44,
	},
	"WB_WWBI": {
		ID:             "WB_WWBI",
		Name:           "Worldwide Bureaucracy Indicators",
		Organization:   "World Bank",
		Themes:         []string{"Governance", "Public Sector"},
		Description:    "Public sector workforce and bureaucracy indicators",
		IndicatorCount: 37,
	},
	"WEF_GCI": {
		ID:             "WEF_GCI",
		Name:           "Global Competitiveness Index",
		Organization:   "World Economic Forum",
		Themes:         []string{"Economy", "Competitiveness", "Innovation", "Infrastructure"},
		Description:    "National competitiveness across 12 pillars including innovation and institutions",
		IndicatorCount: 169,
	},
	"WEF_GCIHH": {
		ID:             "WEF_GCIHH",
		Name:           "Global Competitiveness Index (Historical)",
		Organization:   "World Economic Forum",
		Themes:         []string{"Economy", "Competitiveness", "Innovation"},
		Description:    "Historical global competitiveness data",
		IndicatorCount: 163,
	},
	"WEF_TTDI": {
		ID:             "WEF_TTDI",
		Name:           "Travel & Tourism Development Index",
		Organization:   "World Economic Forum",
		Themes:         []string{"Tourism", "Economy", "Infrastructure"},
		Description:    "Tourism competitiveness and development",
		IndicatorCount: 140,
	},
	"WI_GRT": {
		ID:             "WI_GRT",
		Name:           "Global Inequality Database",
		Organization:   "World Inequality Database",
		Themes:         []string{"Social", "Inequality", "Income"},
		Description:    "Income and wealth inequality data",
		IndicatorCount: 4,
	},
	"WJP_ROL": {
		ID:             "WJP_ROL",
		Name:           "Rule of Law Index",
		Organization:   "World Justice Project",
		Themes:         []string{"Governance", "Justice", "Rule of Law"},
		Description:    "Rule of law performance across multiple dimensions",
		IndicatorCount: 53,
	},
	"WRI_CLIMATEWATCH": {
		ID:             "WRI_CLIMATEWATCH",
		Name:           "Climate Watch",
		Organization:   "World Resources Institute",
		Themes:         []string{"Climate", "Environment", "Policy"},
		Description:    "Climate change data and policy tracking",
		IndicatorCount: 2,
	},}
