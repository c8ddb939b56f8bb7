package store

// DefaultCatalog returns the fixed dataset the shop opens with. The collection
// is process-lifetime state; nothing survives a restart.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        `Зелье от похмелья "Утро добрым не бывает"`,
			Category:    "Зелья OML",
			Description: "Фирменное зелье OML&CO. Выпей перед сном после бурной пятницы — и утром проснёшься эльфом. Действительно работает, но иногда превращает в гнома.",
			Price:       299,
			Stock:       42,
			Rating:      4.7,
			Image:       "https://via.placeholder.com/300x200?text=OML+Зелье",
		},
		{
			ID:          "2",
			Name:        `Волшебная палочка "Тыкни и сработает"`,
			Category:    "Артефакты OML",
			Description: "Универсальная палочка от OML&CO. Работает от любого тыка. Может включить свет, открыть банку или превратить соседа в жабу.",
			Price:       1499,
			Stock:       15,
			Rating:      4.9,
			Image:       "https://via.placeholder.com/300x200?text=OML+Палочка",
		},
		{
			ID:          "3",
			Name:        `Ковёр-самолёт "Эконом OML"`,
			Category:    "Транспорт OML",
			Description: "Летает, но только по расписанию и с пересадками. Багаж оплачивается отдельно. Ручная кладь — одна сова. Сертифицировано OML&CO.",
			Price:       5999,
			Stock:       3,
			Rating:      4.2,
			Image:       "https://via.placeholder.com/300x200?text=OML+Ковёр",
		},
		{
			ID:          "4",
			Name:        `Шапка-невидимка "Инкогнито OML"`,
			Category:    "Одежда OML",
			Description: "Делает невидимым... но только если никто не смотрит. Дырочка специально для рогов, если вы демон. Эксклюзив OML&CO.",
			Price:       899,
			Stock:       27,
			Rating:      4.5,
			Image:       "https://via.placeholder.com/300x200?text=OML+Шапка",
		},
		{
			ID:          "5",
			Name:        `Котелок для зелий "Антипригарный OML"`,
			Category:    "Посуда OML",
			Description: "Варите зелья и не отмывайте потом неделю. Тефлоновое покрытие выдерживает даже кислоту. Разработка OML&CO.",
			Price:       2499,
			Stock:       8,
			Rating:      4.8,
			Image:       "https://via.placeholder.com/300x200?text=OML+Котелок",
		},
		{
			ID:          "6",
			Name:        `Метла "Спортивная OML Pro"`,
			Category:    "Транспорт OML",
			Description: "Разгоняется до 100 км/ч за 3 секунды. В комплекте: защита от птиц, подогрев ручек и навигатор от OML&CO.",
			Price:       3999,
			Stock:       11,
			Rating:      4.9,
			Image:       "https://via.placeholder.com/300x200?text=OML+Метла",
		},
		{
			ID:          "7",
			Name:        `Кристалл предсказаний "OML Шар-0"`,
			Category:    "Гадания OML",
			Description: "Показывает будущее с точностью до 50% — либо сбудется, либо нет. Можно использовать как ночник. OML&CO рекомендует.",
			Price:       1299,
			Stock:       33,
			Rating:      4.3,
			Image:       "https://via.placeholder.com/300x200?text=OML+Кристалл",
		},
		{
			ID:          "8",
			Name:        `Зелье правды "OML Разговор по душам"`,
			Category:    "Зелья OML",
			Description: "Заставляет говорить правду. Даже если собеседник — кот. Особенно эффективно с тёщей. Протестировано OML&CO.",
			Price:       499,
			Stock:       56,
			Rating:      4.6,
			Image:       "https://via.placeholder.com/300x200?text=OML+Правда",
		},
		{
			ID:          "9",
			Name:        `Перчатки неуклюжести "OML Soft"`,
			Category:    "Аксессуары OML",
			Description: "В них невозможно ничего сломать. Даже если вы роняете ноутбук — он мягко парит. Идеально для детей и пьяных. OML&CO.",
			Price:       699,
			Stock:       19,
			Rating:      4.4,
			Image:       "https://via.placeholder.com/300x200?text=OML+Перчатки",
		},
		{
			ID:          "10",
			Name:        `Сундук с секретом "OML Mystery"`,
			Category:    "Мебель OML",
			Description: "Открывается только тогда, когда никто не смотрит. Внутри пусто, но это и есть секрет. Запатентовано OML&CO.",
			Price:       4999,
			Stock:       2,
			Rating:      5.0,
			Image:       "https://via.placeholder.com/300x200?text=OML+Сундук",
		},
		{
			ID:          "11",
			Name:        `Книга заклинаний "OML Для чайников"`,
			Category:    "Книги OML",
			Description: `100 простых заклинаний для начинающих ведьм и колдунов. Включает раздел "Как не поджечь дом". Издание OML&CO.`,
			Price:       899,
			Stock:       47,
			Rating:      4.7,
			Image:       "https://via.placeholder.com/300x200?text=OML+Книга",
		},
		{
			ID:          "12",
			Name:        `Зелье удачи "OML Фартовый"`,
			Category:    "Зелья OML",
			Description: "После приёма вы обязательно найдёте деньги... но потеряете носки. Действует 24 часа. Хит продаж OML&CO.",
			Price:       399,
			Stock:       84,
			Rating:      4.9,
			Image:       "https://via.placeholder.com/300x200?text=OML+Удача",
		},
	}
}
