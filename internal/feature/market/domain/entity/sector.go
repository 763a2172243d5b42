// Package entity はmarketフィーチャーのドメインモデルを定義します。
package entity

// SectorName は銘柄が属するセクターの閉じた列挙です。
type SectorName string

const (
	SectorGreenEnergy SectorName = "Green Energy"
	SectorTech        SectorName = "Tech"
	SectorPSU         SectorName = "PSU"
	SectorInfra       SectorName = "Infra"
	SectorBanking     SectorName = "Banking"
	SectorFMCG        SectorName = "FMCG"
)

// Sectors は全セクターを宣言順で返します。
func Sectors() []SectorName {
	return []SectorName{
		SectorGreenEnergy,
		SectorTech,
		SectorPSU,
		SectorInfra,
		SectorBanking,
		SectorFMCG,
	}
}

// Valid はセクター名が列挙に含まれるかを返します。
func (s SectorName) Valid() bool {
	switch s {
	case SectorGreenEnergy, SectorTech, SectorPSU, SectorInfra, SectorBanking, SectorFMCG:
		return true
	}
	return false
}

// SectorAggregate はセクター単位の騰落率です。
// 構成銘柄のQuoteとは独立に生成されます。
type SectorAggregate struct {
	Name          SectorName
	ChangePercent float64
}
