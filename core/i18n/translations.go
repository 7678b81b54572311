package i18n

// Translation tables, keyed language → nested sections. Column keys are
// duplicated under both their camelCase and storage-field spellings so
// either lookup style resolves.
var translations = map[string]map[string]interface{}{
	"fr": {
		"app": map[string]interface{}{
			"title":    "Warehouse Reception",
			"subtitle": "Suivi des réceptions et dates d'expiration",
			"footer":   "Système de Suivi des Réceptions",
		},
		"form": map[string]interface{}{
			"title":          "Formulaire de Réception",
			"productName":    "Nom du Produit",
			"cartons":        "Nombre de Cartons",
			"unitsPerCarton": "Unités par Carton",
			"barcode":        "Code-barres (6 derniers chiffres)",
			"totalUnits":     "Unités Totales",
			"productionDate": "Date de Production",
			"expirationDate": "Date d'Expiration",
			"shelfLife":      "Durée de Vie (Mois)",
			"status":         "Statut",
			"addButton":      "Ajouter à la Liste",
			"requiredDates":  "Veuillez sélectionner les dates de production et d'expiration",
		},
		"table": map[string]interface{}{
			"title":           "Enregistrements de Réception",
			"totalReceptions": "Total des réceptions",
			"totalUnits":      "Unités totales",
			"noData":          "Aucune réception enregistrée",
			"generalTotal":    "TOTAL GÉNÉRAL",
			"deleteError":     "Erreur lors de la suppression",
			"columns": map[string]interface{}{
				"product":           "Produit",
				"product_name":      "Produit",
				"cartons":           "Cartons",
				"unitsPerCarton":    "Unités/Carton",
				"units_per_carton":  "Unités/Carton",
				"totalUnits":        "Unités Totales",
				"total_units":       "Unités Totales",
				"barcode":           "Code-barres",
				"production":        "Production",
				"production_date":   "Production",
				"expiration":        "Expiration",
				"expiration_date":   "Expiration",
				"shelfLife":         "Durée de Vie",
				"shelf_life_months": "Durée de Vie",
				"status":            "Statut",
				"actions":           "Actions",
			},
		},
		"status": map[string]interface{}{
			"ok":          "OK",
			"passedThird": "Passed ⅓",
			"expired":     "Expired",
		},
		"pdf": map[string]interface{}{
			"title":           "RAPPORT DES RÉCEPTIONS",
			"generatedOn":     "Généré le",
			"receptionsCount": "Nombre de réceptions",
			"totalUnits":      "Unités totales",
			"generalTotal":    "TOTAL GÉNÉRAL DES UNITÉS",
			"error":           "Erreur lors de la génération du PDF",
		},
		"common": map[string]interface{}{
			"all":       "Tous",
			"allStatus": "Tous les statuts",
			"filter":    "Filtre",
			"status":    "Statut",
		},
	},
	"en": {
		"app": map[string]interface{}{
			"title":    "Warehouse Reception",
			"subtitle": "Track product receptions and expiration dates",
			"footer":   "Warehouse Reception Tracking System",
		},
		"form": map[string]interface{}{
			"title":          "Reception Form",
			"productName":    "Product Name",
			"cartons":        "Number of Cartons",
			"unitsPerCarton": "Units per Carton",
			"barcode":        "Barcode (last 6 digits)",
			"totalUnits":     "Total Units",
			"productionDate": "Production Date",
			"expirationDate": "Expiration Date",
			"shelfLife":      "Shelf Life (Months)",
			"status":         "Status",
			"addButton":      "Add to List",
			"requiredDates":  "Please select production and expiration dates",
		},
		"table": map[string]interface{}{
			"title":           "Reception Records",
			"totalReceptions": "Total receptions",
			"totalUnits":      "Total units",
			"noData":          "No receptions recorded",
			"generalTotal":    "GENERAL TOTAL",
			"deleteError":     "Error deleting reception",
			"columns": map[string]interface{}{
				"product":           "Product",
				"product_name":      "Product",
				"cartons":           "Cartons",
				"unitsPerCarton":    "Units/Carton",
				"units_per_carton":  "Units/Carton",
				"totalUnits":        "Total Units",
				"total_units":       "Total Units",
				"barcode":           "Barcode",
				"production":        "Production",
				"production_date":   "Production",
				"expiration":        "Expiration",
				"expiration_date":   "Expiration",
				"shelfLife":         "Shelf Life",
				"shelf_life_months": "Shelf Life",
				"status":            "Status",
				"actions":           "Actions",
			},
		},
		"status": map[string]interface{}{
			"ok":          "OK",
			"passedThird": "Passed ⅓",
			"expired":     "Expired",
		},
		"pdf": map[string]interface{}{
			"title":           "RECEPTIONS REPORT",
			"generatedOn":     "Generated on",
			"receptionsCount": "Number of receptions",
			"totalUnits":      "Total units",
			"generalTotal":    "GENERAL TOTAL UNITS",
			"error":           "Error generating PDF",
		},
		"common": map[string]interface{}{
			"all":       "All",
			"allStatus": "All status",
			"filter":    "Filter",
			"status":    "Status",
		},
	},
	"ar": {
		"app": map[string]interface{}{
			"title":    "استقبال المستودع",
			"subtitle": "تتبع استلام المنتجات وتواريخ انتهاء الصلاحية",
			"footer":   "نظام تتبع استقبال المستودع",
		},
		"form": map[string]interface{}{
			"title":          "نموذج الاستقبال",
			"productName":    "اسم المنتج",
			"cartons":        "عدد الكراتين",
			"unitsPerCarton": "الوحدات في الكرتون",
			"barcode":        "الباركود (آخر 6 أرقام)",
			"totalUnits":     "إجمالي الوحدات",
			"productionDate": "تاريخ الإنتاج",
			"expirationDate": "تاريخ انتهاء الصلاحية",
			"shelfLife":      "مدة الصلاحية (أشهر)",
			"status":         "الحالة",
			"addButton":      "إضافة إلى القائمة",
			"requiredDates":  "الرجاء اختيار تاريخ الإنتاج وانتهاء الصلاحية",
		},
		"table": map[string]interface{}{
			"title":           "سجلات الاستقبال",
			"totalReceptions": "إجمالي الاستقبالات",
			"totalUnits":      "إجمالي الوحدات",
			"noData":          "لا توجد استقبالات مسجلة",
			"generalTotal":    "المجموع العام",
			"deleteError":     "خطأ في الحذف",
			"columns": map[string]interface{}{
				"product":           "المنتج",
				"product_name":      "المنتج",
				"cartons":           "الكراتين",
				"unitsPerCarton":    "وحدات/كرتون",
				"units_per_carton":  "وحدات/كرتون",
				"totalUnits":        "إجمالي الوحدات",
				"total_units":       "إجمالي الوحدات",
				"barcode":           "الباركود",
				"production":        "الإنتاج",
				"production_date":   "الإنتاج",
				"expiration":        "الانتهاء",
				"expiration_date":   "الانتهاء",
				"shelfLife":         "مدة الصلاحية",
				"shelf_life_months": "مدة الصلاحية",
				"status":            "الحالة",
				"actions":           "الإجراءات",
			},
		},
		"status": map[string]interface{}{
			"ok":          "جيد",
			"passedThird": "مر الثلث",
			"expired":     "منتهي",
		},
		"pdf": map[string]interface{}{
			"title":           "تقرير الاستقبالات",
			"generatedOn":     "تم الإنشاء في",
			"receptionsCount": "عدد الاستقبالات",
			"totalUnits":      "إجمالي الوحدات",
			"generalTotal":    "المجموع العام للوحدات",
			"error":           "خطأ في إنشاء PDF",
		},
		"common": map[string]interface{}{
			"all":       "الكل",
			"allStatus": "جميع الحالات",
			"filter":    "فلتر",
			"status":    "الحالة",
		},
	},
}
