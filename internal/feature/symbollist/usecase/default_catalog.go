package usecase

import "ohlc_backend/internal/feature/symbollist/domain/entity"

// DefaultCatalog is seeded when the configuration names no catalogue.
func DefaultCatalog() []entity.Symbol {
	return []entity.Symbol{
		{Code: "HDFCBANK", Name: "HDFC Bank", Sector: "banks"},
		{Code: "ICICIBANK", Name: "ICICI Bank", Sector: "banks"},
		{Code: "SBIN", Name: "State Bank of India", Sector: "banks"},
		{Code: "KOTAKBANK", Name: "Kotak Mahindra Bank", Sector: "banks"},
		{Code: "AXISBANK", Name: "Axis Bank", Sector: "banks"},
		{Code: "TCS", Name: "Tata Consultancy Services", Sector: "it"},
		{Code: "INFY", Name: "Infosys", Sector: "it"},
		{Code: "WIPRO", Name: "Wipro", Sector: "it"},
		{Code: "HCLTECH", Name: "HCL Technologies", Sector: "it"},
		{Code: "HINDUNILVR", Name: "Hindustan Unilever", Sector: "fmcg"},
		{Code: "ITC", Name: "ITC Ltd", Sector: "fmcg"},
		{Code: "NESTLEIND", Name: "Nestle India", Sector: "fmcg"},
		{Code: "SUNPHARMA", Name: "Sun Pharmaceutical", Sector: "pharma"},
		{Code: "DRREDDY", Name: "Dr. Reddy's Labs", Sector: "pharma"},
		{Code: "CIPLA", Name: "Cipla", Sector: "pharma"},
		{Code: "TATAMOTORS", Name: "Tata Motors", Sector: "auto"},
		{Code: "MARUTI", Name: "Maruti Suzuki", Sector: "auto"},
		{Code: "BAJAJ-AUTO", Name: "Bajaj Auto", Sector: "auto"},
		{Code: "RELIANCE", Name: "Reliance Industries", Sector: "energy"},
		{Code: "LT", Name: "Larsen & Toubro", Sector: "energy"},
		{Code: "ADANIENT", Name: "Adani Enterprises", Sector: "energy"},
		{Code: "BHARTIARTL", Name: "Bharti Airtel", Sector: "others"},
		{Code: "ASIANPAINT", Name: "Asian Paints", Sector: "others"},
		{Code: "JIOFIN", Name: "Jio Financial Services", Sector: "others"},
	}
}
