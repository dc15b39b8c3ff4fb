package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Mongo      Mongo      `envPrefix:"MONGO_"`
	Razorpay   Razorpay   `envPrefix:"RAZORPAY_"`
	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
	Session    Session    `envPrefix:"SESSION_"`
	Webhook    Webhook    `envPrefix:"WEBHOOK_"`
}

type Mongo struct {
	URI      string `env:"URI"`
	Database string `env:"DATABASE" envDefault:"velvethome"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID"`
	KeySecret  string `env:"KEY_SECRET"`
	Currency   string `env:"CURRENCY" envDefault:"INR"`
}

type Cloudinary struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.cloudinary.com"`
	CloudName  string `env:"CLOUD_NAME"`
	APIKey     string `env:"API_KEY"`
	APISecret  string `env:"API_SECRET"`
}

// Session holds the shared secret used to validate session tokens issued by
// the external identity provider.
type Session struct {
	Secret string `env:"SECRET"`
}

// Webhook holds the signing secret for identity-provider webhook deliveries.
type Webhook struct {
	Secret string `env:"SECRET"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
