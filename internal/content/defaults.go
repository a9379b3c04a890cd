package content

import "remitabeg-landing/internal/models"

// Default returns the built-in RemitAbeg landing copy. Used when no database
// is configured and for any section the database leaves empty.
func Default() models.Content {
	return models.Content{
		FAQs:         DefaultFAQs(),
		Features:     DefaultFeatures(),
		Stats:        DefaultStats(),
		Testimonials: DefaultTestimonials(),
	}
}

func DefaultFAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "How fast are transfers with RemitAbeg?",
			Answer:   "Transfers typically complete in under 2 minutes. Once you send, the recipient can access their funds almost instantly, unlike traditional services that can take 3-5 business days.",
		},
		{
			Question: "What are the fees?",
			Answer:   "We charge a flat 0.5% fee on all transfers, with no hidden costs. Traditional remittance services often charge 5-10% in fees and unfavorable exchange rates.",
		},
		{
			Question: "Is RemitAbeg secure?",
			Answer:   "Yes! RemitAbeg is built on blockchain technology, which provides transparent, immutable transaction records. Your funds are secured by smart contracts, and you maintain full control of your wallet.",
		},
		{
			Question: "Do I need a crypto wallet?",
			Answer:   "Yes, you'll need a Web3 wallet like MetaMask, Trust Wallet, or any WalletConnect-compatible wallet. Don't worry - we'll guide you through the setup process!",
		},
		{
			Question: "How does the recipient get their money?",
			Answer:   "Recipients can receive funds directly to their wallet or convert to local currency (NGN) through our trusted off-ramp partners. We're working on more direct bank transfer options.",
		},
		{
			Question: "Which countries can I send to?",
			Answer:   "Currently, we focus on Nigeria, but we're expanding to other African countries. You can send from anywhere in the world to supported destinations.",
		},
	}
}

func DefaultStats() []models.Stat {
	return []models.Stat{
		{Icon: "trending-up", Value: "$2.5M+", Label: "Total Volume", Gradient: "from-green-500 to-green-600"},
		{Icon: "users", Value: "12,000+", Label: "Active Users", Gradient: "from-blue-500 to-blue-600"},
		{Icon: "globe", Value: "45+", Label: "Countries", Gradient: "from-yellow-500 to-yellow-600"},
		{Icon: "zap", Value: "< 2 min", Label: "Avg. Transfer Time", Gradient: "from-purple-500 to-purple-600"},
	}
}

func DefaultFeatures() []models.Feature {
	return []models.Feature{
		{
			Icon:        "⚡",
			Title:       "Lightning Fast",
			Description: "Send money home in under 2 minutes, not days. Your family gets access to funds almost instantly.",
			Gradient:    "bg-gradient-to-br from-green-100 to-green-200",
		},
		{
			Icon:        "💰",
			Title:       "Low Fees",
			Description: "A flat 0.5% fee with no hidden charges and fair exchange rates on every transfer.",
			Gradient:    "bg-gradient-to-br from-yellow-100 to-yellow-200",
		},
		{
			Icon:        "🔒",
			Title:       "Secure by Design",
			Description: "Smart contracts secure every transfer and you keep full control of your wallet.",
			Gradient:    "bg-gradient-to-br from-blue-100 to-blue-200",
		},
	}
}

func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:    "Chioma Okafor",
			Role:    "Nurse, London",
			Content: "I used to wait days for my mum to receive money. With RemitAbeg it arrives before I finish my tea.",
			Avatar:  "/static/avatars/chioma.jpg",
			Rating:  5,
		},
		{
			Name:    "Tunde Adebayo",
			Role:    "Software Engineer, Toronto",
			Content: "The fees are a fraction of what I paid before. Setting up the wallet took five minutes.",
			Avatar:  "/static/avatars/tunde.jpg",
			Rating:  5,
		},
		{
			Name:    "Amaka Eze",
			Role:    "Small Business Owner, Houston",
			Content: "I pay my suppliers in Lagos every week. Fast, cheap and I can track everything on-chain.",
			Avatar:  "/static/avatars/amaka.jpg",
			Rating:  4,
		},
	}
}
