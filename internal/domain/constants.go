package domain

const (
	TxEarned   = "earned"
	TxRedeemed = "redeemed"
)

const (
	MembershipIndividual    = "individual"
	MembershipCombo         = "combo"
	MembershipPersonalizada = "personalizada"
)

const (
	PlanEsencial = "esencial"
	PlanCompleta = "completa"
	PlanPlatinum = "platinum"
)

const (
	StatusActiva     = "activa"
	StatusPausada    = "pausada"
	StatusCompletada = "completada"
	StatusCancelada  = "cancelada"
)

const (
	AreaGrande  = "grandes"
	AreaMediana = "medianas"
	AreaChica   = "chicas"
)

// Reward catalog categories shown in the console.
const (
	CategoryDescuentos = "descuentos"
	CategoryServicios  = "servicios"
	CategoryProductos  = "productos"
	CategoryVIP        = "vip"
)

// GuardActionDeleteClient scopes the deletion guard to the client table.
// Other destructive actions get their own key and independent state.
const GuardActionDeleteClient = "clients:delete"

func ValidTransactionType(t string) bool {
	return t == TxEarned || t == TxRedeemed
}

func ValidRewardCategory(c string) bool {
	switch c {
	case CategoryDescuentos, CategoryServicios, CategoryProductos, CategoryVIP:
		return true
	}
	return false
}

func ValidMembershipStatus(s string) bool {
	switch s {
	case StatusActiva, StatusPausada, StatusCompletada, StatusCancelada:
		return true
	}
	return false
}

func ValidPlan(p string) bool {
	return p == PlanEsencial || p == PlanCompleta || p == PlanPlatinum
}

func ValidMembershipType(t string) bool {
	return t == MembershipIndividual || t == MembershipCombo || t == MembershipPersonalizada
}

func ValidAreaCategory(c string) bool {
	return c == AreaGrande || c == AreaMediana || c == AreaChica
}
