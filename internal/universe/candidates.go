// Package universe runs the scoring pipeline across fixed candidate lists and
// reduces the results to a ranked top-5 per asset class and search direction.
package universe

// Candidate is one entry of a fixed scan universe.
type Candidate struct {
	Symbol string
	Name   string
	Sector string // sector for stocks, category for funds
}

// StockCandidates is the NSE large-cap scan universe.
var StockCandidates = []Candidate{
	{"RELIANCE.NS", "Reliance Industries Limited", "Energy"},
	{"TCS.NS", "Tata Consultancy Services Limited", "Technology"},
	{"INFY.NS", "Infosys Limited", "Technology"},
	{"HDFCBANK.NS", "HDFC Bank Limited", "Financial Services"},
	{"ICICIBANK.NS", "ICICI Bank Limited", "Financial Services"},
	{"HINDUNILVR.NS", "Hindustan Unilever Limited", "Consumer Goods"},
	{"ITC.NS", "ITC Limited", "Consumer Goods"},
	{"SBIN.NS", "State Bank of India", "Financial Services"},
	{"BHARTIARTL.NS", "Bharti Airtel Limited", "Telecommunications"},
	{"KOTAKBANK.NS", "Kotak Mahindra Bank Limited", "Financial Services"},
	{"LT.NS", "Larsen & Toubro Limited", "Engineering"},
	{"ASIANPAINT.NS", "Asian Paints Limited", "Chemicals"},
	{"MARUTI.NS", "Maruti Suzuki India Limited", "Automobile"},
	{"BAJFINANCE.NS", "Bajaj Finance Limited", "Financial Services"},
	{"WIPRO.NS", "Wipro Limited", "Technology"},
	{"HCLTECH.NS", "HCL Technologies Limited", "Technology"},
	{"SUNPHARMA.NS", "Sun Pharmaceutical Industries Limited", "Pharmaceuticals"},
	{"TITAN.NS", "Titan Company Limited", "Consumer Goods"},
	{"TECHM.NS", "Tech Mahindra Limited", "Technology"},
	{"ULTRACEMCO.NS", "UltraTech Cement Limited", "Cement"},
}

// FundCandidates is the Indian mutual fund scan universe.
var FundCandidates = []Candidate{
	{"SBI-BLUECHIP", "SBI Bluechip Fund", "Large Cap"},
	{"HDFC-TOP100", "HDFC Top 100 Fund", "Large Cap"},
	{"ICICI-BLUECHIP", "ICICI Prudential Bluechip Fund", "Large Cap"},
	{"AXIS-BLUECHIP", "Axis Bluechip Fund", "Large Cap"},
	{"MIRAE-LARGECAP", "Mirae Asset Large Cap Fund", "Large Cap"},
	{"SBI-SMALLCAP", "SBI Small Cap Fund", "Small Cap"},
	{"HDFC-MIDCAP", "HDFC Mid-Cap Opportunities Fund", "Mid Cap"},
	{"ICICI-MIDCAP", "ICICI Prudential Mid Cap Fund", "Mid Cap"},
	{"KOTAK-MULTICAP", "Kotak Standard Multicap Fund", "Multi Cap"},
	{"FRANKLIN-FLEXICAP", "Franklin India Flexi Cap Fund", "Flexi Cap"},
	{"DSP-TAXSAVER", "DSP Tax Saver Fund", "ELSS"},
	{"AXIS-ELSS", "Axis Long Term Equity Fund", "ELSS"},
}
