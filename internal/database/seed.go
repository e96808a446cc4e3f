package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/i18n"
	"github.com/example/winehouse/internal/models"
	"github.com/example/winehouse/internal/utils"
)

// Seed populates empty tables with the initial site content. Tables that
// already hold rows are left untouched, so the call is safe on every boot.
func Seed(conn *gorm.DB) error {
	if err := seedCatalog(conn); err != nil {
		return err
	}
	if err := seedContent(conn); err != nil {
		return err
	}
	if err := seedCountries(conn); err != nil {
		return err
	}
	if err := seedSettings(conn); err != nil {
		return err
	}
	return seedAdmin(conn)
}

func seedCatalog(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{
			Slug:        "red",
			Name:        i18n.Text{Zh: "红葡萄酒", Ja: "赤ワイン", En: "Red Wine", It: "Vino Rosso"},
			Description: i18n.Text{Zh: "精选优质红葡萄酒", Ja: "最高品質赤ワイン", En: "Premium red wines", It: "Vini rossi premium"},
			SortOrder:   1,
		},
		{
			Slug:        "white",
			Name:        i18n.Text{Zh: "白葡萄酒", Ja: "白ワイン", En: "White Wine", It: "Vino Bianco"},
			Description: i18n.Text{Zh: "清爽优雅的白葡萄酒", Ja: "爽やかでエレガントな白ワイン", En: "Refreshing and elegant white wines", It: "Vini bianchi raffinati"},
			SortOrder:   2,
		},
		{
			Slug:        "sparkling",
			Name:        i18n.Text{Zh: "起泡酒", Ja: "スパークリングワイン", En: "Sparkling Wine", It: "Vino Spumante"},
			Description: i18n.Text{Zh: "欢庆时刻的气泡佳酿", Ja: "祝日のスパークリングワイン", En: "Celebration sparkling wines", It: "Vini spumanti per festeggiare"},
			SortOrder:   3,
		},
	}
	if err := conn.Create(&categories).Error; err != nil {
		return err
	}

	red, white, sparkling := categories[0].ID, categories[1].ID, categories[2].ID

	wines := []models.Wine{
		{
			CategoryID:   red,
			Name:         i18n.Text{Zh: "古典赤霞珠", Ja: "古典カベルネソーヴィニヨン", En: "Classic Cabernet Sauvignon", It: "Cabernet Sauvignon Classico"},
			Description:  i18n.Text{Zh: "深沉的紫红色泽，散发出浓郁的黑醋栗和香草香气。单宁柔和，余味悠长。", Ja: "深い紫がかった赤色。黒いカシスとバニラのノート。", En: "Deep ruby red with rich blackcurrant and vanilla notes. Soft tannins, long finish.", It: "Colore rosso rubino intenso con sentori di ribes nero e vaniglia."},
			Region:       i18n.Text{Zh: "波尔多, 法国", Ja: "ボルドー, フランス", En: "Bordeaux, France", It: "Bordeaux, Francia"},
			GrapeVariety: i18n.Text{Zh: "赤霞珠", Ja: "カベルネソーヴィニヨン", En: "Cabernet Sauvignon", It: "Cabernet Sauvignon"},
			Price:        688, Year: 2018, AlcoholContent: 14.5, Featured: true, SortOrder: 1,
		},
		{
			CategoryID:   red,
			Name:         i18n.Text{Zh: "珍藏梅洛", Ja: "リザーブメルロー", En: "Reserve Merlot", It: "Merlot Riserva"},
			Description:  i18n.Text{Zh: "柔和的果香与细腻的单宁完美平衡。带有樱桃和巧克力的风味。", Ja: "穏やかな果実感と繊細なタンニンのバランス。", En: "Well-balanced fruit and refined tannins with cherry and chocolate notes.", It: "Frutta delicata e tannini raffinati con note di ciliegia e cioccolato."},
			Region:       i18n.Text{Zh: "勃艮第, 法国", Ja: "ブルゴーニュ, フランス", En: "Burgundy, France", It: "Borgogna, Francia"},
			GrapeVariety: i18n.Text{Zh: "梅洛", Ja: "メルロー", En: "Merlot", It: "Merlot"},
			Price:        458, Year: 2019, AlcoholContent: 13.5, Featured: true, SortOrder: 2,
		},
		{
			CategoryID:   red,
			Name:         i18n.Text{Zh: "经典黑皮诺", Ja: "クラシックピノノワール", En: "Classic Pinot Noir", It: "Pinot Noir Classico"},
			Description:  i18n.Text{Zh: "优雅细腻的勃艮第风格，带有草莓和玫瑰的香气。", Ja: "エレガントなブルゴーニュスタイル。いちごとバラのノート。", En: "Elegant Burgundy style with strawberry and rose notes.", It: "Stile Borgogna elegante con fragola e rosa."},
			Region:       i18n.Text{Zh: "勃艮第, 法国", Ja: "ブルゴーニュ, フランス", En: "Burgundy, France", It: "Borgogna, Francia"},
			GrapeVariety: i18n.Text{Zh: "黑皮诺", Ja: "ピノノワール", En: "Pinot Noir", It: "Pinot Noir"},
			Price:        528, Year: 2020, AlcoholContent: 13.0, Featured: true, SortOrder: 3,
		},
		{
			CategoryID:   red,
			Name:         i18n.Text{Zh: "托斯卡纳西拉", Ja: "トスカーナシラー", En: "Tuscan Syrah", It: "Syrah Toscano"},
			Description:  i18n.Text{Zh: "浓郁的深色水果风味，伴有胡椒和皮革的复杂香气。", Ja: "濃厚なダークフルーツの風味。ペッパーやレザーの複雑なノート。", En: "Intense dark fruit with pepper and leather notes.", It: "Frutta scura intensa con pepe e pelle."},
			Region:       i18n.Text{Zh: "托斯卡纳, 意大利", Ja: "トスカーナ, イタリア", En: "Tuscany, Italy", It: "Toscana, Italia"},
			GrapeVariety: i18n.Text{Zh: "西拉", Ja: "シラー", En: "Syrah", It: "Syrah"},
			Price:        758, Year: 2017, AlcoholContent: 14.0, SortOrder: 4,
		},
		{
			CategoryID:   white,
			Name:         i18n.Text{Zh: "霞多丽干白", Ja: "シャルドネ", En: "Chardonnay", It: "Chardonnay"},
			Description:  i18n.Text{Zh: "金黄色泽，带有柑橘和热带水果的香气，酸度适中。", Ja: "ゴールデンイエロー。柑橘やトロピカルフルーツのノート。", En: "Golden yellow with citrus and tropical fruit notes, balanced acidity.", It: "Colore dorato con note agrumi e frutta tropicale, acidità equilibrata."},
			Region:       i18n.Text{Zh: "勃艮第, 法国", Ja: "ブルゴーニュ, フランス", En: "Burgundy, France", It: "Borgogna, Francia"},
			GrapeVariety: i18n.Text{Zh: "霞多丽", Ja: "シャルドネ", En: "Chardonnay", It: "Chardonnay"},
			Price:        368, Year: 2021, AlcoholContent: 12.5, Featured: true, SortOrder: 1,
		},
		{
			CategoryID:   white,
			Name:         i18n.Text{Zh: "长相思白", Ja: "ソーヴィニヨンブラン", En: "Sauvignon Blanc", It: "Sauvignon Blanc"},
			Description:  i18n.Text{Zh: "清新爽脆，带有青苹果和百香果的香气。", Ja: "新鮮でシャキっとした口感。青リンゴやパッションフルーツのノート。", En: "Fresh and crisp with green apple and passion fruit notes.", It: "Fresco e croccante con mela verde e frutto della passione."},
			Region:       i18n.Text{Zh: "卢瓦尔河谷, 法国", Ja: "ロワール渓谷, フランス", En: "Loire Valley, France", It: "Valle della Loira, Francia"},
			GrapeVariety: i18n.Text{Zh: "长相思", Ja: "ソーヴィニヨンブラン", En: "Sauvignon Blanc", It: "Sauvignon Blanc"},
			Price:        328, Year: 2022, AlcoholContent: 12.0, Featured: true, SortOrder: 2,
		},
		{
			CategoryID:   white,
			Name:         i18n.Text{Zh: "雷司令半干", Ja: "リースリング", En: "Riesling", It: "Riesling"},
			Description:  i18n.Text{Zh: "优雅的矿物风味，带有桃子和蜂蜜的甜香。", Ja: "エレガントなミネラル感。桃やハニーの甘い香り。", En: "Elegant mineral notes with peach and honey sweetness.", It: "Note minerali eleganti con pesca e miele."},
			Region:       i18n.Text{Zh: "阿尔萨斯, 法国", Ja: "アルザス, フランス", En: "Alsace, France", It: "Alsazia, Francia"},
			GrapeVariety: i18n.Text{Zh: "雷司令", Ja: "リースリング", En: "Riesling", It: "Riesling"},
			Price:        428, Year: 2021, AlcoholContent: 12.5, SortOrder: 3,
		},
		{
			CategoryID:   sparkling,
			Name:         i18n.Text{Zh: "年份香槟", Ja: "ヴィンテージシャンパン", En: "Vintage Champagne", It: "Champagne Vintage"},
			Description:  i18n.Text{Zh: "细腻的气泡，烤面包和坚果的复杂风味。", Ja: "繊細な泡。ナッツやトーストの複雑な風味。", En: "Fine bubbles with complex toasted bread and nut flavors.", It: "Bollicine fini con complessi sentori di pane tostato e noci."},
			Region:       i18n.Text{Zh: "香槟区, 法国", Ja: "シャンパーニュ, フランス", En: "Champagne Region, France", It: "Regione Champagne, Francia"},
			GrapeVariety: i18n.Text{Zh: "霞多丽/黑皮诺", Ja: "シャルドネ/ピノノワール", En: "Chardonnay/Pinot Noir", It: "Chardonnay/Pinot Noir"},
			Price:        1288, Year: 2015, AlcoholContent: 12.0, Featured: true, SortOrder: 1,
		},
		{
			CategoryID:   sparkling,
			Name:         i18n.Text{Zh: "普罗赛克起泡", Ja: "プロセッコ", En: "Prosecco", It: "Prosecco"},
			Description:  i18n.Text{Zh: "清新果香，带有梨子和白花的香气。", Ja: "新鮮なフルーティさ。梨や白い花のノート。", En: "Fresh fruit aromas with pear and white flower notes.", It: "Fruttato fresco con pera e fiori bianchi."},
			Region:       i18n.Text{Zh: "威尼托, 意大利", Ja: "ヴェネト, イタリア", En: "Veneto, Italy", It: "Veneto, Italia"},
			GrapeVariety: i18n.Text{Zh: "格雷拉", Ja: "グレーラ", En: "Glera", It: "Glera"},
			Price:        268, Year: 2022, AlcoholContent: 11.0, Featured: true, SortOrder: 2,
		},
		{
			CategoryID:   sparkling,
			Name:         i18n.Text{Zh: "卡瓦特酿", Ja: "カヴァ", En: "Cava Reserva", It: "Cava Reserva"},
			Description:  i18n.Text{Zh: "坚果风味与清新酸度完美结合。", Ja: "ナッツの風味と新鮮な酸味の完璧なバランス。", En: "Perfect balance of nut flavors and fresh acidity.", It: "Perfetto equilibrio tra note di noci e acidità fresca."},
			Region:       i18n.Text{Zh: "加泰罗尼亚, 西班牙", Ja: "カタルーニャ, スペイン", En: "Catalonia, Spain", It: "Catalogna, Spagna"},
			GrapeVariety: i18n.Text{Zh: "马家婆/帕雷亚达", Ja: "マカベオ/パレリャーダ", En: "Macabeo/Parellada", It: "Macabeo/Parellada"},
			Price:        198, Year: 2020, AlcoholContent: 11.5, SortOrder: 3,
		},
	}

	return conn.Create(&wines).Error
}

func seedContent(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Story{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		stories := []models.Story{
			{
				Title:     i18n.Text{Zh: "酒庄历史", Ja: "ワイナリーの歴史", En: "History", It: "Storia della Cantina"},
				Content:   i18n.Text{Zh: "我们的酒庄创立于1892年，历经四代传承，始终坚持手工酿造的理念。每一瓶葡萄酒都承载着我们对大自然的敬畏和对品质的追求。", Ja: "私たちのワイナリーは1892年に設立されました。4世代にわたり継承され、常に手作りの醸造哲学を守り続けています。", En: "Founded in 1892, our winery has been passed down through four generations, adhering to the philosophy of handcrafted winemaking.", It: "La nostra cantina è stata fondata nel 1892, tramandata attraverso quattro generazioni, aderendo alla filosofia della vinificazione artigianale."},
				SortOrder: 1,
			},
			{
				Title:     i18n.Text{Zh: "酿酒理念", Ja: "醸造理念", En: "Winemaking Philosophy", It: "Filosofia di Produzione"},
				Content:   i18n.Text{Zh: "我们相信好葡萄酒是种出来的。从葡萄园到酒瓶，每一个环节都倾注了我们的热情和专业。我们尊重风土条件，让葡萄自然表达其特色。", Ja: "良いワインは葡萄から生まれると信じています。葡萄園からボトルまで、すべての工程に情熱と専門知識を注いでいます。", En: "We believe great wine is made in the vineyard. From vine to bottle, we pour passion and expertise into every step.", It: "Crediamo che il grande vino si faccia in vigna. Dal vigneto alla bottiglia, mettiamo passione ed esperienza in ogni fase."},
				SortOrder: 2,
			},
		}
		if err := conn.Create(&stories).Error; err != nil {
			return err
		}
	}

	if err := conn.Model(&models.HomeHero{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	heroes := []models.HomeHero{
		{
			Title:     i18n.Text{Zh: "岁月的馈赠", Ja: "歳月の贈り物", En: "Gift of Time", It: "Dono del Tempo"},
			Subtitle:  i18n.Text{Zh: "源自百年酒庄的醇香佳酿，每一滴都诉说着时光的故事。", Ja: "百年ワイナリーから届いた極上の味、一滴一滴が時の物語を語る。", En: "Premium vintages from a century-old winery, telling the story of time in every drop.", It: "Vini pregiati da una cantina secolare."},
			Theme:     "from-stone-900 to-stone-950",
			Link:      "/wines/red",
			SortOrder: 1,
		},
		{
			Title:     i18n.Text{Zh: "红韵流金", Ja: "深紅の輝き", En: "Velvet & Gold", It: "Velluto e Oro"},
			Subtitle:  i18n.Text{Zh: "品味深邃与优雅的交响曲，感受单宁在舌尖的丝滑舞动。", Ja: "深みとエレガントのシンフォニー、舌の上で踊るタンニンを感じて。", En: "A symphony of depth and elegance, feel the tannins dance on your palate.", It: "Una sinfonia di profondità ed eleganza."},
			Theme:     "from-red-950 to-stone-950",
			Link:      "/wines/red",
			SortOrder: 2,
		},
		{
			Title:     i18n.Text{Zh: "清冽之白", Ja: "清冽な白", En: "Crisp & Pure", It: "Fresco e Puro"},
			Subtitle:  i18n.Text{Zh: "唤醒味蕾的清新果香，如山间清泉般纯净透亮。", Ja: "味覚を目覚めさせるフルーティさ、山の湧き水のように純粋で透明。", En: "Fresh notes that awaken the palate, pure and clear like a mountain spring.", It: "Note fresche che risvegliano il palato."},
			Theme:     "from-stone-800 to-slate-900",
			Link:      "/wines/white",
			SortOrder: 3,
		},
	}

	return conn.Create(&heroes).Error
}

func seedCountries(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	countries := []models.Country{
		{Code: "CN", Name: i18n.Text{Zh: "中国", Ja: "中国", En: "China", It: "Cina"}, Currency: "CNY", Symbol: "¥", ExchangeRate: 1, Active: true, SortOrder: 1},
		{Code: "JP", Name: i18n.Text{Zh: "日本", Ja: "日本", En: "Japan", It: "Giappone"}, Currency: "JPY", Symbol: "¥", ExchangeRate: 0.05, Active: true, SortOrder: 2},
		{Code: "US", Name: i18n.Text{Zh: "美国", Ja: "アメリカ", En: "USA", It: "USA"}, Currency: "USD", Symbol: "$", ExchangeRate: 0.14, Active: true, SortOrder: 3},
		{Code: "IT", Name: i18n.Text{Zh: "意大利", Ja: "イタリア", En: "Italy", It: "Italia"}, Currency: "EUR", Symbol: "€", ExchangeRate: 0.12, Active: true, SortOrder: 4},
		{Code: "FR", Name: i18n.Text{Zh: "法国", Ja: "フランス", En: "France", It: "Francia"}, Currency: "EUR", Symbol: "€", ExchangeRate: 0.12, Active: true, SortOrder: 5},
		{Code: "GB", Name: i18n.Text{Zh: "英国", Ja: "イギリス", En: "UK", It: "Regno Unito"}, Currency: "GBP", Symbol: "£", ExchangeRate: 0.10, Active: true, SortOrder: 6},
		{Code: "AU", Name: i18n.Text{Zh: "澳大利亚", Ja: "オーストラリア", En: "Australia", It: "Australia"}, Currency: "AUD", Symbol: "A$", ExchangeRate: 0.15, Active: true, SortOrder: 7},
	}

	return conn.Create(&countries).Error
}

func seedSettings(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.SiteSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := []models.SiteSetting{
		{SettingKey: "site_name", Value: i18n.Text{Zh: "Wine House", Ja: "Wine House", En: "Wine House", It: "Wine House"}},
		{SettingKey: "site_description", Value: i18n.Text{Zh: "源自1892年的百年酒庄，传承匠心酿造", Ja: "1892年からの百年ワイナリー", En: "Premium wines since 1892", It: "Vini premium dal 1892"}},
		{SettingKey: "contact_email", Value: i18n.Text{Zh: "info@winehouse.com", Ja: "info@winehouse.jp", En: "info@winehouse.com", It: "info@winehouse.it"}},
		{SettingKey: "contact_phone", Value: i18n.Text{Zh: "+86 400-888-8888", Ja: "+81 3-1234-5678", En: "+1 555-123-4567", It: "+39 02 1234567"}},
		{SettingKey: "contact_address", Value: i18n.Text{Zh: "中国上海市静安区南京西路1888号", Ja: "東京都渋谷区神南1-2-3", En: "123 Wine Street, Napa Valley, CA", It: "Via del Vino 123, Milano"}},
		{SettingKey: "footer_description", Value: i18n.Text{Zh: "源自1892年的百年酒庄，传承匠心酿造", Ja: "1892年からの百年ワイナリー、手作り醸造の伝統", En: "Premium wines from a century-old winery since 1892", It: "Vini premium da una cantina secolare dal 1892"}},
		{SettingKey: "site_logo", Value: i18n.Text{Zh: "/images/logo.png", Ja: "/images/logo.png", En: "/images/logo.png", It: "/images/logo.png"}},
		{SettingKey: "site_favicon", Value: i18n.Text{Zh: "/images/favicon.ico", Ja: "/images/favicon.ico", En: "/images/favicon.ico", It: "/images/favicon.ico"}},
	}

	return conn.Create(&settings).Error
}

func seedAdmin(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     "admin",
		PasswordHash: hash,
		Email:        "admin@winehouse.com",
	}

	if err := conn.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("username", admin.Username).Msg("seeded default admin account")
	return nil
}
