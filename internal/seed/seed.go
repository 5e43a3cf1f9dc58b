// Package seed populates the memory storage driver with the demo
// newsroom content so the app is browsable out of the box.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"sportshub-backend/internal/domains/article"
	"sportshub-backend/internal/domains/user"
	"sportshub-backend/pkg/logger"
)

// demoPasswordHash is bcrypt("demo123"), cost 10. Kept precomputed so
// startup does not spend time hashing.
const demoPasswordHash = "$2b$10$uq4rEFwLhc5adnoUMyH.5.Po0g1qwuIPmZF8d7H7YV0Fls0eiut/O"

func strPtr(s string) *string { return &s }

// Run creates the demo author and a handful of published articles.
// Idempotent enough for the memory driver: the stores start empty.
func Run(ctx context.Context, users user.Repository, articles article.Repository) error {
	demoAuthor := &user.User{
		ID:        uuid.New(),
		Username:  "sportsjournalist",
		Email:     "journalist@allosportshub.com",
		FirstName: strPtr("Marc"),
		LastName:  strPtr("Tremblay"),
		Role:      user.RoleAuthor,
	}
	demoAuthor.PasswordHash = demoPasswordHash

	if err := users.Create(ctx, demoAuthor); err != nil {
		return fmt.Errorf("seed demo author: %w", err)
	}

	for i, a := range demoArticles(demoAuthor.ID) {
		// Spread creation dates over the past week so the feed has an order.
		a.CreatedAt = time.Now().Add(-time.Duration(rand.Int63n(int64(7 * 24 * time.Hour))))
		a.UpdatedAt = time.Now()
		if err := articles.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed article %d: %w", i, err)
		}
	}

	logger.Info("memory store seeded", map[string]interface{}{
		"author":   demoAuthor.Username,
		"articles": len(demoArticles(demoAuthor.ID)),
	})
	return nil
}

func demoArticles(authorID uuid.UUID) []article.Article {
	return []article.Article{
		{
			Title:     "Le Canadien remporte une victoire spectaculaire face aux Bruins",
			Slug:      "canadien-victoire-bruins",
			Excerpt:   "Dans un match palpitant au Centre Bell, le Canadien de Montréal a démontré sa résilience en revenant de deux buts pour s'imposer 4-3 en prolongation.",
			Content:   "Le Centre Bell était en ébullition hier soir alors que le Canadien de Montréal affrontait les Bruins de Boston dans un duel classique de la rivalité historique entre les deux équipes.\n\nMené 2-0 après la première période, le Tricolore a puisé dans ses réserves pour offrir à ses partisans une remontée mémorable. Cole Caufield a été le héros de la soirée avec deux buts, dont celui de la victoire en prolongation.\n\n\"C'est exactement ce type de matchs qui définit le caractère d'une équipe\", a déclaré l'entraîneur-chef après la rencontre. \"Nos joueurs n'ont jamais abandonné et ont continué à jouer avec intensité.\"\n\nLe gardien Samuel Montembeault a également été brillant, réalisant 35 arrêts dont plusieurs spectaculaires en troisième période pour garder son équipe dans le match.\n\nAvec cette victoire, le Canadien grimpe au quatrième rang de la division Atlantique et continue de surprendre les observateurs cette saison.",
			Category:  "NHL",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1515703407324-5f753afd8be8?w=1200&h=675&fit=crop"),
			AuthorID:  authorID,
			Published: true,
			Featured:  true,
		},
		{
			Title:     "La NBA suspend la saison : ce que cela signifie pour les équipes canadiennes",
			Slug:      "nba-suspension-equipes-canadiennes",
			Excerpt:   "La décision surprise de la NBA de suspendre temporairement la saison a des répercussions majeures sur les Raptors de Toronto et l'ensemble de la ligue.",
			Content:   "La NBA a annoncé hier une suspension temporaire de la saison régulière, une décision qui affecte particulièrement les Raptors de Toronto alors qu'ils étaient en pleine course aux séries éliminatoires.\n\nCette pause d'une semaine, motivée par des considérations de santé et de sécurité des joueurs, intervient à un moment crucial du calendrier. Les Raptors, actuellement sixièmes de la Conférence Est, devront maintenir leur forme physique et mentale pendant cette période d'inactivité.\n\n\"C'est une situation inhabituelle, mais nous devons nous adapter\", a commenté le directeur général de l'équipe. \"Nos joueurs continueront à s'entraîner et à rester prêts pour la reprise.\"\n\nPour les fans canadiens, cette pause signifie également un report des matchs très attendus contre les Celtics et les 76ers, des confrontations qui auraient pu avoir un impact significatif sur le classement final.\n\nLa ligue a assuré que tous les matchs reportés seraient reprogrammés et que la saison se terminerait comme prévu.",
			Category:  "NBA",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1546519638-68e109498ffc?w=1200&h=675&fit=crop"),
			AuthorID:  authorID,
			Published: true,
		},
		{
			Title:     "Victoire historique du CF Montréal en Ligue des Champions de la CONCACAF",
			Slug:      "cf-montreal-ligue-champions-concacaf",
			Excerpt:   "Le CF Montréal écrit une nouvelle page de son histoire en se qualifiant pour les demi-finales de la Ligue des Champions de la CONCACAF.",
			Content:   "Le CF Montréal a réalisé un exploit majeur en battant le Club América 3-2 au total des deux matchs, se qualifiant ainsi pour les demi-finales de la Ligue des Champions de la CONCACAF.\n\nCette victoire marque un tournant historique pour le club montréalais, qui n'avait jamais atteint ce stade de la compétition. Devant une foule record au Stade Saputo, les joueurs ont livré une performance exceptionnelle.\n\n\"C'est un moment spécial pour notre club et pour le soccer québécois\", a déclaré le capitaine après le match. \"Nous avons prouvé que nous pouvons rivaliser avec les meilleures équipes du continent.\"\n\nLe prochain adversaire sera déterminé lors du tirage au sort prévu la semaine prochaine. L'équipe pourrait affronter des géants comme le Club León ou le Tigres UANL.\n\nLes billets pour les demi-finales seront mis en vente vendredi prochain.",
			Category:  "Soccer",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=1200&h=675&fit=crop"),
			AuthorID:  authorID,
			Published: true,
		},
		{
			Title:     "Félix Auger-Aliassime atteint les quarts de finale à l'Open d'Australie",
			Slug:      "felix-auger-aliassime-open-australie",
			Excerpt:   "Le Québécois Félix Auger-Aliassime continue son parcours impressionnant à Melbourne en dominant son adversaire en quatre sets.",
			Content:   "Félix Auger-Aliassime poursuit son excellent début de saison 2024 en atteignant les quarts de finale de l'Open d'Australie, le premier Grand Chelem de l'année.\n\nLe Montréalais a défait le numéro 12 mondial en quatre sets (6-4, 3-6, 6-3, 7-5) dans un match de haute intensité qui a duré près de trois heures. Sa puissance au service et son jeu de fond de court ont fait la différence.\n\n\"Je me sens vraiment bien sur ce court\", a confié Auger-Aliassime après sa victoire. \"Mon service fonctionne bien et je joue avec beaucoup de confiance.\"\n\nSon prochain adversaire sera le tenant du titre, une confrontation très attendue par les amateurs de tennis du monde entier.\n\nAvec cette performance, le Québécois devrait grimper dans le top 10 mondial la semaine prochaine.",
			Category:  "ATP",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=1200&h=675&fit=crop"),
			AuthorID:  authorID,
			Published: true,
		},
		{
			Title:     "Grand Prix du Canada : les préparatifs battent leur plein",
			Slug:      "grand-prix-canada-preparatifs",
			Excerpt:   "À quelques mois du Grand Prix du Canada de Formule 1, le Circuit Gilles-Villeneuve se prépare à accueillir les meilleures écuries du monde.",
			Content:   "Le Circuit Gilles-Villeneuve de Montréal se prépare activement pour le Grand Prix du Canada de Formule 1, prévu pour le mois de juin prochain.\n\nDes travaux d'amélioration sont en cours sur la piste et dans les installations pour offrir aux pilotes et aux spectateurs une expérience optimale. La resurfaçage de certaines sections et l'amélioration des zones d'échappement font partie des modifications prévues.\n\n\"Nous voulons que ce Grand Prix soit encore plus spectaculaire que les années précédentes\", a déclaré le directeur de l'événement. \"Montréal mérite un événement à la hauteur de sa réputation.\"\n\nLes billets pour l'édition 2024 se vendent rapidement, avec plus de 70% des places déjà réservées. Les organisateurs s'attendent à accueillir plus de 300 000 spectateurs sur l'ensemble du week-end.\n\nLe Grand Prix du Canada reste l'un des événements sportifs les plus populaires au pays.",
			Category:  "F1",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1504707748692-419802cf939d?w=1200&h=675&fit=crop"),
			AuthorID:  authorID,
			Published: true,
		},
	}
}
