package i18n

// ui holds the fixed interface labels for the server-rendered pages.
// Content text lives in the database; only chrome strings live here.
var ui = map[Locale]map[string]string{
	Zh: {
		"nav.home": "首页", "nav.wines": "红酒", "nav.story": "品牌故事", "nav.contact": "联系我们",
		"home.featured": "精选佳酿", "home.categories": "探索分类",
		"wines.price": "价格", "wines.year": "年份", "wines.region": "产区",
		"wines.grape": "葡萄品种", "wines.alcohol": "酒精度", "wines.details": "查看详情",
		"contact.name": "姓名", "contact.email": "邮箱", "contact.phone": "电话",
		"contact.message": "留言", "contact.submit": "提交",
	},
	Ja: {
		"nav.home": "ホーム", "nav.wines": "ワイン", "nav.story": "ブランドストーリー", "nav.contact": "お問い合わせ",
		"home.featured": "おすすめのワイン", "home.categories": "カテゴリー",
		"wines.price": "価格", "wines.year": "ヴィンテージ", "wines.region": "産地",
		"wines.grape": "葡萄品種", "wines.alcohol": "アルコール度数", "wines.details": "詳細を見る",
		"contact.name": "お名前", "contact.email": "メール", "contact.phone": "電話",
		"contact.message": "メッセージ", "contact.submit": "送信",
	},
	En: {
		"nav.home": "Home", "nav.wines": "Wines", "nav.story": "Our Story", "nav.contact": "Contact",
		"home.featured": "Featured Wines", "home.categories": "Explore Categories",
		"wines.price": "Price", "wines.year": "Vintage", "wines.region": "Region",
		"wines.grape": "Grape Variety", "wines.alcohol": "Alcohol", "wines.details": "View Details",
		"contact.name": "Name", "contact.email": "Email", "contact.phone": "Phone",
		"contact.message": "Message", "contact.submit": "Submit",
	},
	It: {
		"nav.home": "Home", "nav.wines": "Vini", "nav.story": "La Nostra Storia", "nav.contact": "Contatti",
		"home.featured": "Vini in Evidenza", "home.categories": "Esplora le Categorie",
		"wines.price": "Prezzo", "wines.year": "Annata", "wines.region": "Regione",
		"wines.grape": "Vitigno", "wines.alcohol": "Gradazione", "wines.details": "Dettagli",
		"contact.name": "Nome", "contact.email": "Email", "contact.phone": "Telefono",
		"contact.message": "Messaggio", "contact.submit": "Invia",
	},
}

// UI returns the interface labels for a locale.
func UI(locale Locale) map[string]string {
	if labels, ok := ui[locale]; ok {
		return labels
	}
	return ui[Default]
}
