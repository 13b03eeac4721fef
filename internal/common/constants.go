package common

const (
	AppCartService       = "cart-service"
	AppMainComputerStore = "main computer-store"
	AudienceUser         = "audience-user"
)
