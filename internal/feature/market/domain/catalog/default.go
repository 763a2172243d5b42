package catalog

import "arthasutra_backend/internal/feature/market/domain/entity"

// defaultEntries はNIFTY 50相当の組み込み銘柄一覧です。
var defaultEntries = []Entry{
	{"RELIANCE", "Reliance Industries Ltd.", entity.SectorInfra},
	{"TCS", "Tata Consultancy Services", entity.SectorTech},
	{"HDFCBANK", "HDFC Bank Ltd.", entity.SectorBanking},
	{"INFY", "Infosys Ltd.", entity.SectorTech},
	{"ICICIBANK", "ICICI Bank Ltd.", entity.SectorBanking},
	{"HINDUNILVR", "Hindustan Unilever Ltd.", entity.SectorFMCG},
	{"SBIN", "State Bank of India", entity.SectorPSU},
	{"BAJFINANCE", "Bajaj Finance Ltd.", entity.SectorBanking},
	{"BHARTIARTL", "Bharti Airtel Ltd.", entity.SectorInfra},
	{"KOTAKBANK", "Kotak Mahindra Bank Ltd.", entity.SectorBanking},
	{"ADANIENT", "Adani Enterprises Ltd.", entity.SectorInfra},
	{"ITC", "ITC Ltd.", entity.SectorFMCG},
	{"LT", "Larsen & Toubro Ltd.", entity.SectorInfra},
	{"ASIANPAINT", "Asian Paints Ltd.", entity.SectorFMCG},
	{"HCLTECH", "HCL Technologies Ltd.", entity.SectorTech},
	{"AXISBANK", "Axis Bank Ltd.", entity.SectorBanking},
	{"MARUTI", "Maruti Suzuki India Ltd.", entity.SectorInfra},
	{"SUNPHARMA", "Sun Pharmaceutical Industries Ltd.", entity.SectorGreenEnergy},
	{"TITAN", "Titan Company Ltd.", entity.SectorFMCG},
	{"WIPRO", "Wipro Ltd.", entity.SectorTech},
	{"ULTRACEMCO", "UltraTech Cement Ltd.", entity.SectorInfra},
	{"ADANIGREEN", "Adani Green Energy Ltd.", entity.SectorGreenEnergy},
	{"NESTLEIND", "Nestle India Ltd.", entity.SectorFMCG},
	{"GRASIM", "Grasim Industries Ltd.", entity.SectorInfra},
	{"JSWSTEEL", "JSW Steel Ltd.", entity.SectorInfra},
	{"POWERGRID", "Power Grid Corporation of India Ltd.", entity.SectorPSU},
	{"NTPC", "NTPC Ltd.", entity.SectorPSU},
	{"ONGC", "Oil & Natural Gas Corporation Ltd.", entity.SectorPSU},
	{"TATAMOTORS", "Tata Motors Ltd.", entity.SectorInfra},
	{"TATASTEEL", "Tata Steel Ltd.", entity.SectorInfra},
	{"COALINDIA", "Coal India Ltd.", entity.SectorPSU},
	{"INDUSINDBK", "IndusInd Bank Ltd.", entity.SectorBanking},
	{"HINDALCO", "Hindalco Industries Ltd.", entity.SectorInfra},
	{"BRITANNIA", "Britannia Industries Ltd.", entity.SectorFMCG},
	{"CIPLA", "Cipla Ltd.", entity.SectorGreenEnergy},
	{"DRREDDY", "Dr. Reddy's Laboratories Ltd.", entity.SectorGreenEnergy},
	{"EICHERMOT", "Eicher Motors Ltd.", entity.SectorInfra},
	{"HEROMOTOCO", "Hero MotoCorp Ltd.", entity.SectorInfra},
	{"BAJAJ-AUTO", "Bajaj Auto Ltd.", entity.SectorInfra},
	{"M&M", "Mahindra & Mahindra Ltd.", entity.SectorInfra},
	{"TECHM", "Tech Mahindra Ltd.", entity.SectorTech},
	{"BPCL", "Bharat Petroleum Corporation Ltd.", entity.SectorPSU},
	{"IOC", "Indian Oil Corporation Ltd.", entity.SectorPSU},
	{"SHREECEM", "Shree Cement Ltd.", entity.SectorInfra},
	{"UPL", "UPL Ltd.", entity.SectorGreenEnergy},
	{"DIVISLAB", "Divi's Laboratories Ltd.", entity.SectorGreenEnergy},
	{"APOLLOHOSP", "Apollo Hospitals Enterprise Ltd.", entity.SectorGreenEnergy},
	{"BAJAJFINSV", "Bajaj Finserv Ltd.", entity.SectorBanking},
	{"HDFCLIFE", "HDFC Life Insurance Company Ltd.", entity.SectorBanking},
	{"SBILIFE", "SBI Life Insurance Company Ltd.", entity.SectorBanking},
}

// DefaultEntries は組み込み銘柄一覧のコピーを返します。
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// Default は組み込み銘柄一覧から構築したCatalogを返します。
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic("catalog: built-in entries are invalid: " + err.Error())
	}
	return c
}
