package i18n

import "techstore/internal/domain"

var english = Translations{
	Home:     "Home",
	Products: "Products",
	About:    "About",
	Contact:  "Contact",

	HeroTitle:    "Welcome to TechStore",
	HeroSubtitle: "Discover the latest tech products with amazing deals and premium quality",
	ShopNow:      "Shop Now",
	LearnMore:    "Learn More",

	FeaturedProducts: "Featured Products",
	BrowseCollection: "Browse our curated collection of premium tech products",

	SearchPlaceholder: "Search products...",
	NoResults:         "No products found matching your search.",
	SearchCleared:     "Search cleared",

	ViewDetails: "View Details",
	AddToCart:   "Add to Cart",
	BuyNow:      "Buy Now",

	SignIn:             "Sign In",
	CreateAccount:      "Create Account",
	FullName:           "Full Name",
	Email:              "Email",
	Password:           "Password",
	ConfirmPassword:    "Confirm Password",
	DontHaveAccount:    "Don't have an account?",
	AlreadyHaveAccount: "Already have an account?",

	ShoppingCart:     "Shopping Cart",
	CartEmpty:        "Your cart is empty",
	ContinueShopping: "Continue Shopping",
	Checkout:         "Checkout",
	Subtotal:         "Subtotal",
	Tax:              "Tax",
	Total:            "Total",
	Remove:           "Remove",
	Quantity:         "Quantity",

	ContactTitle:    "Contact Us",
	ContactSubtitle: "Get in touch with our team",
	YourName:        "Your Name",
	YourEmail:       "Your Email",
	YourMessage:     "Your Message",
	SendMessage:     "Send Message",

	AddedToCart:     "Product added to cart",
	RemovedFromCart: "Product removed from cart",
	CartUpdated:     "Cart updated",
	MessageSent:     "Message sent successfully",
	LoginSuccess:    "Logged in successfully",
	RegisterSuccess: "Account created successfully",

	Categories: map[domain.Category]string{
		domain.CategoryAll:         "All Products",
		domain.CategoryElectronics: "Electronics",
		domain.CategoryComputers:   "Computers",
		domain.CategoryPhones:      "Phones",
		domain.CategoryAccessories: "Accessories",
	},
}

var russian = Translations{
	Home:     "Главная",
	Products: "Товары",
	About:    "О нас",
	Contact:  "Контакты",

	HeroTitle:    "Добро пожаловать в TechStore",
	HeroSubtitle: "Откройте для себя последние технические продукты с удивительными предложениями и премиальным качеством",
	ShopNow:      "Купить сейчас",
	LearnMore:    "Узнать больше",

	FeaturedProducts: "Рекомендуемые товары",
	BrowseCollection: "Просмотрите нашу подборку премиальных технических продуктов",

	SearchPlaceholder: "Поиск товаров...",
	NoResults:         "Товары по вашему запросу не найдены.",
	SearchCleared:     "Поиск очищен",

	ViewDetails: "Подробнее",
	AddToCart:   "В корзину",
	BuyNow:      "Купить сейчас",

	SignIn:             "Войти",
	CreateAccount:      "Создать аккаунт",
	FullName:           "Полное имя",
	Email:              "Email",
	Password:           "Пароль",
	ConfirmPassword:    "Подтвердите пароль",
	DontHaveAccount:    "Нет аккаунта?",
	AlreadyHaveAccount: "Уже есть аккаунт?",

	ShoppingCart:     "Корзина покупок",
	CartEmpty:        "Ваша корзина пуста",
	ContinueShopping: "Продолжить покупки",
	Checkout:         "Оформить заказ",
	Subtotal:         "Промежуточный итог",
	Tax:              "Налог",
	Total:            "Итого",
	Remove:           "Удалить",
	Quantity:         "Количество",

	ContactTitle:    "Свяжитесь с нами",
	ContactSubtitle: "Свяжитесь с нашей командой",
	YourName:        "Ваше имя",
	YourEmail:       "Ваш email",
	YourMessage:     "Ваше сообщение",
	SendMessage:     "Отправить сообщение",

	AddedToCart:     "Товар добавлен в корзину",
	RemovedFromCart: "Товар удален из корзины",
	CartUpdated:     "Корзина обновлена",
	MessageSent:     "Сообщение отправлено успешно",
	LoginSuccess:    "Вход выполнен успешно",
	RegisterSuccess: "Аккаунт создан успешно",

	Categories: map[domain.Category]string{
		domain.CategoryAll:         "Все товары",
		domain.CategoryElectronics: "Электроника",
		domain.CategoryComputers:   "Компьютеры",
		domain.CategoryPhones:      "Телефоны",
		domain.CategoryAccessories: "Аксессуары",
	},
}

var uzbek = Translations{
	Home:     "Bosh sahifa",
	Products: "Mahsulotlar",
	About:    "Biz haqimizda",
	Contact:  "Aloqa",

	HeroTitle:    "TechStore'ga xush kelibsiz",
	HeroSubtitle: "Ajoyib takliflar va yuqori sifatli eng so'nggi texnika mahsulotlarini kashf eting",
	ShopNow:      "Hoziroq xarid qiling",
	LearnMore:    "Ko'proq ma'lumot",

	FeaturedProducts: "Tavsiya etilgan mahsulotlar",
	BrowseCollection: "Yuqori sifatli texnika mahsulotlarimizning tanlangan kolleksiyasini ko'rib chiqing",

	SearchPlaceholder: "Mahsulotlarni qidirish...",
	NoResults:         "Qidiruvingizga mos mahsulotlar topilmadi.",
	SearchCleared:     "Qidiruv tozalandi",

	ViewDetails: "Batafsil",
	AddToCart:   "Savatchaga qo'shish",
	BuyNow:      "Hoziroq sotib olish",

	SignIn:             "Kirish",
	CreateAccount:      "Hisob yaratish",
	FullName:           "To'liq ism",
	Email:              "Elektron pochta",
	Password:           "Parol",
	ConfirmPassword:    "Parolni tasdiqlash",
	DontHaveAccount:    "Hisobingiz yo'qmi?",
	AlreadyHaveAccount: "Allaqachon hisobingiz bormi?",

	ShoppingCart:     "Savatcha",
	CartEmpty:        "Savatchangiz bo'sh",
	ContinueShopping: "Xaridlarni davom ettirish",
	Checkout:         "Buyurtma berish",
	Subtotal:         "Oraliq summa",
	Tax:              "Soliq",
	Total:            "Jami",
	Remove:           "O'chirish",
	Quantity:         "Miqdor",

	ContactTitle:    "Biz bilan bog'laning",
	ContactSubtitle: "Bizning jamoamiz bilan aloqa qiling",
	YourName:        "Ismingiz",
	YourEmail:       "Elektron pochtangiz",
	YourMessage:     "Xabaringiz",
	SendMessage:     "Xabarni yuborish",

	AddedToCart:     "Mahsulot savatchaga qo'shildi",
	RemovedFromCart: "Mahsulot savatchadan o'chirildi",
	CartUpdated:     "Savatcha yangilandi",
	MessageSent:     "Xabar muvaffaqiyatli yuborildi",
	LoginSuccess:    "Muvaffaqiyatli kirdingiz",
	RegisterSuccess: "Hisob muvaffaqiyatli yaratildi",

	Categories: map[domain.Category]string{
		domain.CategoryAll:         "Barcha mahsulotlar",
		domain.CategoryElectronics: "Elektronika",
		domain.CategoryComputers:   "Kompyuterlar",
		domain.CategoryPhones:      "Telefonlar",
		domain.CategoryAccessories: "Aksessuarlar",
	},
}
