package models

type StoreSettings struct {
	StoreName        string `json:"storeName"`
	StoreEmail       string `json:"storeEmail"`
	StorePhone       string `json:"storePhone"`
	StoreAddress     string `json:"storeAddress"`
	StoreDescription string `json:"storeDescription"`
}

type NotificationSettings struct {
	EmailOnNewOrder bool `json:"emailOnNewOrder"`
	EmailOnNewUser  bool `json:"emailOnNewUser"`
	EmailOnLowStock bool `json:"emailOnLowStock"`
	DailyReports    bool `json:"dailyReports"`
}
