package entity

// FlowDirection は機関投資家の売買差額の向きを表します。
type FlowDirection string

const (
	NetBuy  FlowDirection = "Net Buy"
	NetSell FlowDirection = "Net Sell"
)

// FlowSnapshot は海外（FII）・国内（DII）機関投資家の売買金額（クロール）です。
type FlowSnapshot struct {
	Date    string // YYYY-MM-DD
	FIIBuy  int64
	FIISell int64
	DIIBuy  int64
	DIISell int64
}

// FIINet は海外機関投資家の買い越し額を返します。
func (f FlowSnapshot) FIINet() int64 { return f.FIIBuy - f.FIISell }

// DIINet は国内機関投資家の買い越し額を返します。
func (f FlowSnapshot) DIINet() int64 { return f.DIIBuy - f.DIISell }

// FIIDirection はFIIの売買方向を返します。差額ゼロは買い越し扱いです。
func (f FlowSnapshot) FIIDirection() FlowDirection { return directionOf(f.FIINet()) }

// DIIDirection はDIIの売買方向を返します。
func (f FlowSnapshot) DIIDirection() FlowDirection { return directionOf(f.DIINet()) }

// FIIBuyRatio は売買合計に占める買いの割合（0〜1）を返します。
func (f FlowSnapshot) FIIBuyRatio() float64 { return buyRatio(f.FIIBuy, f.FIISell) }

// DIIBuyRatio は売買合計に占める買いの割合（0〜1）を返します。
func (f FlowSnapshot) DIIBuyRatio() float64 { return buyRatio(f.DIIBuy, f.DIISell) }

func directionOf(net int64) FlowDirection {
	if net >= 0 {
		return NetBuy
	}
	return NetSell
}

func buyRatio(buy, sell int64) float64 {
	total := buy + sell
	if total <= 0 {
		return 0
	}
	return float64(buy) / float64(total)
}
