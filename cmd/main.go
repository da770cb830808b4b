package main

import (
	"net/http"
	"os"

	"github.com/Byte-Boost/Backend-Otter/internal/auth"
	"github.com/Byte-Boost/Backend-Otter/internal/client"
	"github.com/Byte-Boost/Backend-Otter/internal/commission"
	"github.com/Byte-Boost/Backend-Otter/internal/product"
	"github.com/Byte-Boost/Backend-Otter/internal/seller"
	"github.com/Byte-Boost/Backend-Otter/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	database, err := db.ConnectDataBase()
	if err != nil {
		log.WithField("err", err).Fatal("erro ao conectar no banco")
	}

	if err := database.AutoMigrate(
		&client.Client{},
		&product.Product{},
		&seller.Seller{},
		&commission.Commission{},
	); err != nil {
		log.WithField("err", err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	clientHandler := client.NewHandler(database, log)
	productHandler := product.NewHandler(database, log)
	sellerHandler := seller.NewHandler(database, log)
	commissionHandler := commission.NewHandler(database, log)

	// Router
	r := mux.NewRouter()

	// Login é a única rota fora do middleware de autenticação
	r.HandleFunc("/login", sellerHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de clientes
	api.HandleFunc("/clients", clientHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clients", clientHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clients/{id}", clientHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clients/{id}", clientHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clients/{id}", clientHandler.DeletarCliente).Methods("DELETE")

	// Rotas de produtos
	api.HandleFunc("/products", productHandler.CriarProduto).Methods("POST")
	api.HandleFunc("/products", productHandler.ListarProdutos).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.AtualizarProduto).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.DeletarProduto).Methods("DELETE")

	// Rotas de vendedores
	api.Handle("/sellers", auth.RequireAdmin(http.HandlerFunc(sellerHandler.CriarVendedor))).Methods("POST")
	api.HandleFunc("/sellers", sellerHandler.ListarVendedores).Methods("GET")
	api.HandleFunc("/sellers/{id}", sellerHandler.BuscarPorID).Methods("GET")

	// Rotas de comissões (stats antes da rota com {id})
	api.HandleFunc("/commissions", commissionHandler.CriarComissao).Methods("POST")
	api.HandleFunc("/commissions", commissionHandler.ListarComissoes).Methods("GET")
	api.HandleFunc("/commissions/stats", commissionHandler.EstatisticasComissoes).Methods("GET")
	api.HandleFunc("/commissions/{id}", commissionHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/commissions/{id}", commissionHandler.AtualizarComissao).Methods("PUT")
	api.HandleFunc("/commissions/{id}", commissionHandler.DeletarComissao).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("servidor iniciado")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
