// Package seeders carries the first-boot data: the initial product catalog
// and the default admin account.
package seeders

import (
	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/settings"
)

// Products is the starter catalog. Written only when products.json does not
// exist yet.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID:    "p1",
			Name:  map[string]string{"ru": "Пельмени классические", "uz": "Klassik chuchvara"},
			Desc:  map[string]string{"ru": "Говядина и свинина, 1 кг", "uz": "Mol va cho'chqa go'shti, 1 kg"},
			Price: 45000,
			Image: "/static/img/classic.jpg",
		},
		{
			ID:    "p2",
			Name:  map[string]string{"ru": "Пельмени из говядины", "uz": "Mol go'shtli chuchvara"},
			Desc:  map[string]string{"ru": "100% говядина, 1 кг", "uz": "100% mol go'shti, 1 kg"},
			Price: 52000,
			Image: "/static/img/beef.jpg",
		},
		{
			ID:    "p3",
			Name:  map[string]string{"ru": "Пельмени куриные", "uz": "Tovuqli chuchvara"},
			Desc:  map[string]string{"ru": "Куриное филе, 1 кг", "uz": "Tovuq filesi, 1 kg"},
			Price: 38000,
			Image: "/static/img/chicken.jpg",
		},
		{
			ID:    "p4",
			Name:  map[string]string{"ru": "Манты с говядиной", "uz": "Mol go'shtli manti"},
			Desc:  map[string]string{"ru": "Ручная лепка, 1 кг", "uz": "Qo'lda tayyorlangan, 1 kg"},
			Price: 55000,
			Image: "/static/img/manty.jpg",
		},
		{
			ID:    "p5",
			Name:  map[string]string{"ru": "Манты с тыквой", "uz": "Qovoqli manti"},
			Desc:  map[string]string{"ru": "Тыква и лук, 1 кг", "uz": "Qovoq va piyoz, 1 kg"},
			Price: 42000,
			Image: "/static/img/pumpkin.jpg",
		},
		{
			ID:    "p6",
			Name:  map[string]string{"ru": "Вареники с картошкой", "uz": "Kartoshkali varenik"},
			Desc:  map[string]string{"ru": "Картофель и жареный лук, 1 кг", "uz": "Kartoshka va qovurilgan piyoz, 1 kg"},
			Price: 35000,
			Image: "/static/img/vareniki.jpg",
		},
		{
			ID:    "p7",
			Name:  map[string]string{"ru": "Вареники с творогом", "uz": "Tvorogli varenik"},
			Desc:  map[string]string{"ru": "Домашний творог, 1 кг", "uz": "Uy tvorogi, 1 kg"},
			Price: 40000,
			Image: "/static/img/tvorog.jpg",
		},
		{
			ID:    "p8",
			Name:  map[string]string{"ru": "Чебуреки", "uz": "Chiburek"},
			Desc:  map[string]string{"ru": "Полуфабрикат, 10 шт", "uz": "Yarim tayyor, 10 dona"},
			Price: 30000,
			Image: "/static/img/cheburek.jpg",
		},
		{
			ID:    "p9",
			Name:  map[string]string{"ru": "Хинкали", "uz": "Xinkali"},
			Desc:  map[string]string{"ru": "Сочная начинка, 1 кг", "uz": "Shirali ichlik, 1 kg"},
			Price: 58000,
			Image: "/static/img/khinkali.jpg",
		},
	}
}

// Admins is the default panel account. Change the password before exposing
// the panel publicly.
func Admins() []settings.Admin {
	return []settings.Admin{
		{Username: "admin", Password: "12345"},
	}
}
