package repository

import "finance-dashboard/internal/dto"

// MarketRepository serves the static sample listings backing the stocks and
// crypto screens. There is no live market-data integration.
type MarketRepository interface {
	Stocks() []dto.Listing
	Crypto() []dto.Listing
}

type marketRepository struct {
	stocks []dto.Listing
	crypto []dto.Listing
}

func NewMarketRepository() MarketRepository {
	return &marketRepository{
		stocks: []dto.Listing{
			{Symbol: "PETR4", Name: "Petrobras", Price: 32.45, Change: 2.5, Volume: "125M", MarketCap: "421B"},
			{Symbol: "VALE3", Name: "Vale", Price: 68.9, Change: -1.2, Volume: "89M", MarketCap: "312B"},
			{Symbol: "ITUB4", Name: "Itaú Unibanco", Price: 25.8, Change: 1.8, Volume: "156M", MarketCap: "245B"},
			{Symbol: "BBDC4", Name: "Bradesco", Price: 18.45, Change: 0.5, Volume: "98M", MarketCap: "189B"},
			{Symbol: "ABEV3", Name: "Ambev", Price: 14.2, Change: -0.8, Volume: "67M", MarketCap: "223B"},
			{Symbol: "WEGE3", Name: "WEG", Price: 45.6, Change: 3.2, Volume: "45M", MarketCap: "156B"},
			{Symbol: "MGLU3", Name: "Magazine Luiza", Price: 8.9, Change: -2.1, Volume: "78M", MarketCap: "59B"},
			{Symbol: "RENT3", Name: "Localiza", Price: 52.3, Change: 1.5, Volume: "34M", MarketCap: "67B"},
		},
		crypto: []dto.Listing{
			{Symbol: "BTC", Name: "Bitcoin", Price: 43250.0, Change: 2.8, Volume: "28.5B", MarketCap: "847B"},
			{Symbol: "ETH", Name: "Ethereum", Price: 2650.0, Change: 1.5, Volume: "15.2B", MarketCap: "318B"},
			{Symbol: "BNB", Name: "Binance Coin", Price: 315.8, Change: -0.8, Volume: "1.8B", MarketCap: "47B"},
			{Symbol: "SOL", Name: "Solana", Price: 98.45, Change: 4.2, Volume: "2.1B", MarketCap: "42B"},
			{Symbol: "ADA", Name: "Cardano", Price: 0.52, Change: -1.2, Volume: "890M", MarketCap: "18B"},
			{Symbol: "AVAX", Name: "Avalanche", Price: 36.9, Change: 3.1, Volume: "650M", MarketCap: "14B"},
			{Symbol: "DOT", Name: "Polkadot", Price: 7.25, Change: -2.5, Volume: "420M", MarketCap: "9B"},
			{Symbol: "MATIC", Name: "Polygon", Price: 0.89, Change: 1.8, Volume: "380M", MarketCap: "8B"},
		},
	}
}

func (r *marketRepository) Stocks() []dto.Listing {
	return r.stocks
}

func (r *marketRepository) Crypto() []dto.Listing {
	return r.crypto
}
