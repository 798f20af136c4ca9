// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// chineseSimplified is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream chineseSimplified word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real chineseSimplified mnemonics.
var chineseSimplified = [2048]string{
	"wzhs0000", "wzhs0001", "wzhs0002", "wzhs0003", "wzhs0004", "wzhs0005", "wzhs0006", "wzhs0007",
	"wzhs0008", "wzhs0009", "wzhs0010", "wzhs0011", "wzhs0012", "wzhs0013", "wzhs0014", "wzhs0015",
	"wzhs0016", "wzhs0017", "wzhs0018", "wzhs0019", "wzhs0020", "wzhs0021", "wzhs0022", "wzhs0023",
	"wzhs0024", "wzhs0025", "wzhs0026", "wzhs0027", "wzhs0028", "wzhs0029", "wzhs0030", "wzhs0031",
	"wzhs0032", "wzhs0033", "wzhs0034", "wzhs0035", "wzhs0036", "wzhs0037", "wzhs0038", "wzhs0039",
	"wzhs0040", "wzhs0041", "wzhs0042", "wzhs0043", "wzhs0044", "wzhs0045", "wzhs0046", "wzhs0047",
	"wzhs0048", "wzhs0049", "wzhs0050", "wzhs0051", "wzhs0052", "wzhs0053", "wzhs0054", "wzhs0055",
	"wzhs0056", "wzhs0057", "wzhs0058", "wzhs0059", "wzhs0060", "wzhs0061", "wzhs0062", "wzhs0063",
	"wzhs0064", "wzhs0065", "wzhs0066", "wzhs0067", "wzhs0068", "wzhs0069", "wzhs0070", "wzhs0071",
	"wzhs0072", "wzhs0073", "wzhs0074", "wzhs0075", "wzhs0076", "wzhs0077", "wzhs0078", "wzhs0079",
	"wzhs0080", "wzhs0081", "wzhs0082", "wzhs0083", "wzhs0084", "wzhs0085", "wzhs0086", "wzhs0087",
	"wzhs0088", "wzhs0089", "wzhs0090", "wzhs0091", "wzhs0092", "wzhs0093", "wzhs0094", "wzhs0095",
	"wzhs0096", "wzhs0097", "wzhs0098", "wzhs0099", "wzhs0100", "wzhs0101", "wzhs0102", "wzhs0103",
	"wzhs0104", "wzhs0105", "wzhs0106", "wzhs0107", "wzhs0108", "wzhs0109", "wzhs0110", "wzhs0111",
	"wzhs0112", "wzhs0113", "wzhs0114", "wzhs0115", "wzhs0116", "wzhs0117", "wzhs0118", "wzhs0119",
	"wzhs0120", "wzhs0121", "wzhs0122", "wzhs0123", "wzhs0124", "wzhs0125", "wzhs0126", "wzhs0127",
	"wzhs0128", "wzhs0129", "wzhs0130", "wzhs0131", "wzhs0132", "wzhs0133", "wzhs0134", "wzhs0135",
	"wzhs0136", "wzhs0137", "wzhs0138", "wzhs0139", "wzhs0140", "wzhs0141", "wzhs0142", "wzhs0143",
	"wzhs0144", "wzhs0145", "wzhs0146", "wzhs0147", "wzhs0148", "wzhs0149", "wzhs0150", "wzhs0151",
	"wzhs0152", "wzhs0153", "wzhs0154", "wzhs0155", "wzhs0156", "wzhs0157", "wzhs0158", "wzhs0159",
	"wzhs0160", "wzhs0161", "wzhs0162", "wzhs0163", "wzhs0164", "wzhs0165", "wzhs0166", "wzhs0167",
	"wzhs0168", "wzhs0169", "wzhs0170", "wzhs0171", "wzhs0172", "wzhs0173", "wzhs0174", "wzhs0175",
	"wzhs0176", "wzhs0177", "wzhs0178", "wzhs0179", "wzhs0180", "wzhs0181", "wzhs0182", "wzhs0183",
	"wzhs0184", "wzhs0185", "wzhs0186", "wzhs0187", "wzhs0188", "wzhs0189", "wzhs0190", "wzhs0191",
	"wzhs0192", "wzhs0193", "wzhs0194", "wzhs0195", "wzhs0196", "wzhs0197", "wzhs0198", "wzhs0199",
	"wzhs0200", "wzhs0201", "wzhs0202", "wzhs0203", "wzhs0204", "wzhs0205", "wzhs0206", "wzhs0207",
	"wzhs0208", "wzhs0209", "wzhs0210", "wzhs0211", "wzhs0212", "wzhs0213", "wzhs0214", "wzhs0215",
	"wzhs0216", "wzhs0217", "wzhs0218", "wzhs0219", "wzhs0220", "wzhs0221", "wzhs0222", "wzhs0223",
	"wzhs0224", "wzhs0225", "wzhs0226", "wzhs0227", "wzhs0228", "wzhs0229", "wzhs0230", "wzhs0231",
	"wzhs0232", "wzhs0233", "wzhs0234", "wzhs0235", "wzhs0236", "wzhs0237", "wzhs0238", "wzhs0239",
	"wzhs0240", "wzhs0241", "wzhs0242", "wzhs0243", "wzhs0244", "wzhs0245", "wzhs0246", "wzhs0247",
	"wzhs0248", "wzhs0249", "wzhs0250", "wzhs0251", "wzhs0252", "wzhs0253", "wzhs0254", "wzhs0255",
	"wzhs0256", "wzhs0257", "wzhs0258", "wzhs0259", "wzhs0260", "wzhs0261", "wzhs0262", "wzhs0263",
	"wzhs0264", "wzhs0265", "wzhs0266", "wzhs0267", "wzhs0268", "wzhs0269", "wzhs0270", "wzhs0271",
	"wzhs0272", "wzhs0273", "wzhs0274", "wzhs0275", "wzhs0276", "wzhs0277", "wzhs0278", "wzhs0279",
	"wzhs0280", "wzhs0281", "wzhs0282", "wzhs0283", "wzhs0284", "wzhs0285", "wzhs0286", "wzhs0287",
	"wzhs0288", "wzhs0289", "wzhs0290", "wzhs0291", "wzhs0292", "wzhs0293", "wzhs0294", "wzhs0295",
	"wzhs0296", "wzhs0297", "wzhs0298", "wzhs0299", "wzhs0300", "wzhs0301", "wzhs0302", "wzhs0303",
	"wzhs0304", "wzhs0305", "wzhs0306", "wzhs0307", "wzhs0308", "wzhs0309", "wzhs0310", "wzhs0311",
	"wzhs0312", "wzhs0313", "wzhs0314", "wzhs0315", "wzhs0316", "wzhs0317", "wzhs0318", "wzhs0319",
	"wzhs0320", "wzhs0321", "wzhs0322", "wzhs0323", "wzhs0324", "wzhs0325", "wzhs0326", "wzhs0327",
	"wzhs0328", "wzhs0329", "wzhs0330", "wzhs0331", "wzhs0332", "wzhs0333", "wzhs0334", "wzhs0335",
	"wzhs0336", "wzhs0337", "wzhs0338", "wzhs0339", "wzhs0340", "wzhs0341", "wzhs0342", "wzhs0343",
	"wzhs0344", "wzhs0345", "wzhs0346", "wzhs0347", "wzhs0348", "wzhs0349", "wzhs0350", "wzhs0351",
	"wzhs0352", "wzhs0353", "wzhs0354", "wzhs0355", "wzhs0356", "wzhs0357", "wzhs0358", "wzhs0359",
	"wzhs0360", "wzhs0361", "wzhs0362", "wzhs0363", "wzhs0364", "wzhs0365", "wzhs0366", "wzhs0367",
	"wzhs0368", "wzhs0369", "wzhs0370", "wzhs0371", "wzhs0372", "wzhs0373", "wzhs0374", "wzhs0375",
	"wzhs0376", "wzhs0377", "wzhs0378", "wzhs0379", "wzhs0380", "wzhs0381", "wzhs0382", "wzhs0383",
	"wzhs0384", "wzhs0385", "wzhs0386", "wzhs0387", "wzhs0388", "wzhs0389", "wzhs0390", "wzhs0391",
	"wzhs0392", "wzhs0393", "wzhs0394", "wzhs0395", "wzhs0396", "wzhs0397", "wzhs0398", "wzhs0399",
	"wzhs0400", "wzhs0401", "wzhs0402", "wzhs0403", "wzhs0404", "wzhs0405", "wzhs0406", "wzhs0407",
	"wzhs0408", "wzhs0409", "wzhs0410", "wzhs0411", "wzhs0412", "wzhs0413", "wzhs0414", "wzhs0415",
	"wzhs0416", "wzhs0417", "wzhs0418", "wzhs0419", "wzhs0420", "wzhs0421", "wzhs0422", "wzhs0423",
	"wzhs0424", "wzhs0425", "wzhs0426", "wzhs0427", "wzhs0428", "wzhs0429", "wzhs0430", "wzhs0431",
	"wzhs0432", "wzhs0433", "wzhs0434", "wzhs0435", "wzhs0436", "wzhs0437", "wzhs0438", "wzhs0439",
	"wzhs0440", "wzhs0441", "wzhs0442", "wzhs0443", "wzhs0444", "wzhs0445", "wzhs0446", "wzhs0447",
	"wzhs0448", "wzhs0449", "wzhs0450", "wzhs0451", "wzhs0452", "wzhs0453", "wzhs0454", "wzhs0455",
	"wzhs0456", "wzhs0457", "wzhs0458", "wzhs0459", "wzhs0460", "wzhs0461", "wzhs0462", "wzhs0463",
	"wzhs0464", "wzhs0465", "wzhs0466", "wzhs0467", "wzhs0468", "wzhs0469", "wzhs0470", "wzhs0471",
	"wzhs0472", "wzhs0473", "wzhs0474", "wzhs0475", "wzhs0476", "wzhs0477", "wzhs0478", "wzhs0479",
	"wzhs0480", "wzhs0481", "wzhs0482", "wzhs0483", "wzhs0484", "wzhs0485", "wzhs0486", "wzhs0487",
	"wzhs0488", "wzhs0489", "wzhs0490", "wzhs0491", "wzhs0492", "wzhs0493", "wzhs0494", "wzhs0495",
	"wzhs0496", "wzhs0497", "wzhs0498", "wzhs0499", "wzhs0500", "wzhs0501", "wzhs0502", "wzhs0503",
	"wzhs0504", "wzhs0505", "wzhs0506", "wzhs0507", "wzhs0508", "wzhs0509", "wzhs0510", "wzhs0511",
	"wzhs0512", "wzhs0513", "wzhs0514", "wzhs0515", "wzhs0516", "wzhs0517", "wzhs0518", "wzhs0519",
	"wzhs0520", "wzhs0521", "wzhs0522", "wzhs0523", "wzhs0524", "wzhs0525", "wzhs0526", "wzhs0527",
	"wzhs0528", "wzhs0529", "wzhs0530", "wzhs0531", "wzhs0532", "wzhs0533", "wzhs0534", "wzhs0535",
	"wzhs0536", "wzhs0537", "wzhs0538", "wzhs0539", "wzhs0540", "wzhs0541", "wzhs0542", "wzhs0543",
	"wzhs0544", "wzhs0545", "wzhs0546", "wzhs0547", "wzhs0548", "wzhs0549", "wzhs0550", "wzhs0551",
	"wzhs0552", "wzhs0553", "wzhs0554", "wzhs0555", "wzhs0556", "wzhs0557", "wzhs0558", "wzhs0559",
	"wzhs0560", "wzhs0561", "wzhs0562", "wzhs0563", "wzhs0564", "wzhs0565", "wzhs0566", "wzhs0567",
	"wzhs0568", "wzhs0569", "wzhs0570", "wzhs0571", "wzhs0572", "wzhs0573", "wzhs0574", "wzhs0575",
	"wzhs0576", "wzhs0577", "wzhs0578", "wzhs0579", "wzhs0580", "wzhs0581", "wzhs0582", "wzhs0583",
	"wzhs0584", "wzhs0585", "wzhs0586", "wzhs0587", "wzhs0588", "wzhs0589", "wzhs0590", "wzhs0591",
	"wzhs0592", "wzhs0593", "wzhs0594", "wzhs0595", "wzhs0596", "wzhs0597", "wzhs0598", "wzhs0599",
	"wzhs0600", "wzhs0601", "wzhs0602", "wzhs0603", "wzhs0604", "wzhs0605", "wzhs0606", "wzhs0607",
	"wzhs0608", "wzhs0609", "wzhs0610", "wzhs0611", "wzhs0612", "wzhs0613", "wzhs0614", "wzhs0615",
	"wzhs0616", "wzhs0617", "wzhs0618", "wzhs0619", "wzhs0620", "wzhs0621", "wzhs0622", "wzhs0623",
	"wzhs0624", "wzhs0625", "wzhs0626", "wzhs0627", "wzhs0628", "wzhs0629", "wzhs0630", "wzhs0631",
	"wzhs0632", "wzhs0633", "wzhs0634", "wzhs0635", "wzhs0636", "wzhs0637", "wzhs0638", "wzhs0639",
	"wzhs0640", "wzhs0641", "wzhs0642", "wzhs0643", "wzhs0644", "wzhs0645", "wzhs0646", "wzhs0647",
	"wzhs0648", "wzhs0649", "wzhs0650", "wzhs0651", "wzhs0652", "wzhs0653", "wzhs0654", "wzhs0655",
	"wzhs0656", "wzhs0657", "wzhs0658", "wzhs0659", "wzhs0660", "wzhs0661", "wzhs0662", "wzhs0663",
	"wzhs0664", "wzhs0665", "wzhs0666", "wzhs0667", "wzhs0668", "wzhs0669", "wzhs0670", "wzhs0671",
	"wzhs0672", "wzhs0673", "wzhs0674", "wzhs0675", "wzhs0676", "wzhs0677", "wzhs0678", "wzhs0679",
	"wzhs0680", "wzhs0681", "wzhs0682", "wzhs0683", "wzhs0684", "wzhs0685", "wzhs0686", "wzhs0687",
	"wzhs0688", "wzhs0689", "wzhs0690", "wzhs0691", "wzhs0692", "wzhs0693", "wzhs0694", "wzhs0695",
	"wzhs0696", "wzhs0697", "wzhs0698", "wzhs0699", "wzhs0700", "wzhs0701", "wzhs0702", "wzhs0703",
	"wzhs0704", "wzhs0705", "wzhs0706", "wzhs0707", "wzhs0708", "wzhs0709", "wzhs0710", "wzhs0711",
	"wzhs0712", "wzhs0713", "wzhs0714", "wzhs0715", "wzhs0716", "wzhs0717", "wzhs0718", "wzhs0719",
	"wzhs0720", "wzhs0721", "wzhs0722", "wzhs0723", "wzhs0724", "wzhs0725", "wzhs0726", "wzhs0727",
	"wzhs0728", "wzhs0729", "wzhs0730", "wzhs0731", "wzhs0732", "wzhs0733", "wzhs0734", "wzhs0735",
	"wzhs0736", "wzhs0737", "wzhs0738", "wzhs0739", "wzhs0740", "wzhs0741", "wzhs0742", "wzhs0743",
	"wzhs0744", "wzhs0745", "wzhs0746", "wzhs0747", "wzhs0748", "wzhs0749", "wzhs0750", "wzhs0751",
	"wzhs0752", "wzhs0753", "wzhs0754", "wzhs0755", "wzhs0756", "wzhs0757", "wzhs0758", "wzhs0759",
	"wzhs0760", "wzhs0761", "wzhs0762", "wzhs0763", "wzhs0764", "wzhs0765", "wzhs0766", "wzhs0767",
	"wzhs0768", "wzhs0769", "wzhs0770", "wzhs0771", "wzhs0772", "wzhs0773", "wzhs0774", "wzhs0775",
	"wzhs0776", "wzhs0777", "wzhs0778", "wzhs0779", "wzhs0780", "wzhs0781", "wzhs0782", "wzhs0783",
	"wzhs0784", "wzhs0785", "wzhs0786", "wzhs0787", "wzhs0788", "wzhs0789", "wzhs0790", "wzhs0791",
	"wzhs0792", "wzhs0793", "wzhs0794", "wzhs0795", "wzhs0796", "wzhs0797", "wzhs0798", "wzhs0799",
	"wzhs0800", "wzhs0801", "wzhs0802", "wzhs0803", "wzhs0804", "wzhs0805", "wzhs0806", "wzhs0807",
	"wzhs0808", "wzhs0809", "wzhs0810", "wzhs0811", "wzhs0812", "wzhs0813", "wzhs0814", "wzhs0815",
	"wzhs0816", "wzhs0817", "wzhs0818", "wzhs0819", "wzhs0820", "wzhs0821", "wzhs0822", "wzhs0823",
	"wzhs0824", "wzhs0825", "wzhs0826", "wzhs0827", "wzhs0828", "wzhs0829", "wzhs0830", "wzhs0831",
	"wzhs0832", "wzhs0833", "wzhs0834", "wzhs0835", "wzhs0836", "wzhs0837", "wzhs0838", "wzhs0839",
	"wzhs0840", "wzhs0841", "wzhs0842", "wzhs0843", "wzhs0844", "wzhs0845", "wzhs0846", "wzhs0847",
	"wzhs0848", "wzhs0849", "wzhs0850", "wzhs0851", "wzhs0852", "wzhs0853", "wzhs0854", "wzhs0855",
	"wzhs0856", "wzhs0857", "wzhs0858", "wzhs0859", "wzhs0860", "wzhs0861", "wzhs0862", "wzhs0863",
	"wzhs0864", "wzhs0865", "wzhs0866", "wzhs0867", "wzhs0868", "wzhs0869", "wzhs0870", "wzhs0871",
	"wzhs0872", "wzhs0873", "wzhs0874", "wzhs0875", "wzhs0876", "wzhs0877", "wzhs0878", "wzhs0879",
	"wzhs0880", "wzhs0881", "wzhs0882", "wzhs0883", "wzhs0884", "wzhs0885", "wzhs0886", "wzhs0887",
	"wzhs0888", "wzhs0889", "wzhs0890", "wzhs0891", "wzhs0892", "wzhs0893", "wzhs0894", "wzhs0895",
	"wzhs0896", "wzhs0897", "wzhs0898", "wzhs0899", "wzhs0900", "wzhs0901", "wzhs0902", "wzhs0903",
	"wzhs0904", "wzhs0905", "wzhs0906", "wzhs0907", "wzhs0908", "wzhs0909", "wzhs0910", "wzhs0911",
	"wzhs0912", "wzhs0913", "wzhs0914", "wzhs0915", "wzhs0916", "wzhs0917", "wzhs0918", "wzhs0919",
	"wzhs0920", "wzhs0921", "wzhs0922", "wzhs0923", "wzhs0924", "wzhs0925", "wzhs0926", "wzhs0927",
	"wzhs0928", "wzhs0929", "wzhs0930", "wzhs0931", "wzhs0932", "wzhs0933", "wzhs0934", "wzhs0935",
	"wzhs0936", "wzhs0937", "wzhs0938", "wzhs0939", "wzhs0940", "wzhs0941", "wzhs0942", "wzhs0943",
	"wzhs0944", "wzhs0945", "wzhs0946", "wzhs0947", "wzhs0948", "wzhs0949", "wzhs0950", "wzhs0951",
	"wzhs0952", "wzhs0953", "wzhs0954", "wzhs0955", "wzhs0956", "wzhs0957", "wzhs0958", "wzhs0959",
	"wzhs0960", "wzhs0961", "wzhs0962", "wzhs0963", "wzhs0964", "wzhs0965", "wzhs0966", "wzhs0967",
	"wzhs0968", "wzhs0969", "wzhs0970", "wzhs0971", "wzhs0972", "wzhs0973", "wzhs0974", "wzhs0975",
	"wzhs0976", "wzhs0977", "wzhs0978", "wzhs0979", "wzhs0980", "wzhs0981", "wzhs0982", "wzhs0983",
	"wzhs0984", "wzhs0985", "wzhs0986", "wzhs0987", "wzhs0988", "wzhs0989", "wzhs0990", "wzhs0991",
	"wzhs0992", "wzhs0993", "wzhs0994", "wzhs0995", "wzhs0996", "wzhs0997", "wzhs0998", "wzhs0999",
	"wzhs1000", "wzhs1001", "wzhs1002", "wzhs1003", "wzhs1004", "wzhs1005", "wzhs1006", "wzhs1007",
	"wzhs1008", "wzhs1009", "wzhs1010", "wzhs1011", "wzhs1012", "wzhs1013", "wzhs1014", "wzhs1015",
	"wzhs1016", "wzhs1017", "wzhs1018", "wzhs1019", "wzhs1020", "wzhs1021", "wzhs1022", "wzhs1023",
	"wzhs1024", "wzhs1025", "wzhs1026", "wzhs1027", "wzhs1028", "wzhs1029", "wzhs1030", "wzhs1031",
	"wzhs1032", "wzhs1033", "wzhs1034", "wzhs1035", "wzhs1036", "wzhs1037", "wzhs1038", "wzhs1039",
	"wzhs1040", "wzhs1041", "wzhs1042", "wzhs1043", "wzhs1044", "wzhs1045", "wzhs1046", "wzhs1047",
	"wzhs1048", "wzhs1049", "wzhs1050", "wzhs1051", "wzhs1052", "wzhs1053", "wzhs1054", "wzhs1055",
	"wzhs1056", "wzhs1057", "wzhs1058", "wzhs1059", "wzhs1060", "wzhs1061", "wzhs1062", "wzhs1063",
	"wzhs1064", "wzhs1065", "wzhs1066", "wzhs1067", "wzhs1068", "wzhs1069", "wzhs1070", "wzhs1071",
	"wzhs1072", "wzhs1073", "wzhs1074", "wzhs1075", "wzhs1076", "wzhs1077", "wzhs1078", "wzhs1079",
	"wzhs1080", "wzhs1081", "wzhs1082", "wzhs1083", "wzhs1084", "wzhs1085", "wzhs1086", "wzhs1087",
	"wzhs1088", "wzhs1089", "wzhs1090", "wzhs1091", "wzhs1092", "wzhs1093", "wzhs1094", "wzhs1095",
	"wzhs1096", "wzhs1097", "wzhs1098", "wzhs1099", "wzhs1100", "wzhs1101", "wzhs1102", "wzhs1103",
	"wzhs1104", "wzhs1105", "wzhs1106", "wzhs1107", "wzhs1108", "wzhs1109", "wzhs1110", "wzhs1111",
	"wzhs1112", "wzhs1113", "wzhs1114", "wzhs1115", "wzhs1116", "wzhs1117", "wzhs1118", "wzhs1119",
	"wzhs1120", "wzhs1121", "wzhs1122", "wzhs1123", "wzhs1124", "wzhs1125", "wzhs1126", "wzhs1127",
	"wzhs1128", "wzhs1129", "wzhs1130", "wzhs1131", "wzhs1132", "wzhs1133", "wzhs1134", "wzhs1135",
	"wzhs1136", "wzhs1137", "wzhs1138", "wzhs1139", "wzhs1140", "wzhs1141", "wzhs1142", "wzhs1143",
	"wzhs1144", "wzhs1145", "wzhs1146", "wzhs1147", "wzhs1148", "wzhs1149", "wzhs1150", "wzhs1151",
	"wzhs1152", "wzhs1153", "wzhs1154", "wzhs1155", "wzhs1156", "wzhs1157", "wzhs1158", "wzhs1159",
	"wzhs1160", "wzhs1161", "wzhs1162", "wzhs1163", "wzhs1164", "wzhs1165", "wzhs1166", "wzhs1167",
	"wzhs1168", "wzhs1169", "wzhs1170", "wzhs1171", "wzhs1172", "wzhs1173", "wzhs1174", "wzhs1175",
	"wzhs1176", "wzhs1177", "wzhs1178", "wzhs1179", "wzhs1180", "wzhs1181", "wzhs1182", "wzhs1183",
	"wzhs1184", "wzhs1185", "wzhs1186", "wzhs1187", "wzhs1188", "wzhs1189", "wzhs1190", "wzhs1191",
	"wzhs1192", "wzhs1193", "wzhs1194", "wzhs1195", "wzhs1196", "wzhs1197", "wzhs1198", "wzhs1199",
	"wzhs1200", "wzhs1201", "wzhs1202", "wzhs1203", "wzhs1204", "wzhs1205", "wzhs1206", "wzhs1207",
	"wzhs1208", "wzhs1209", "wzhs1210", "wzhs1211", "wzhs1212", "wzhs1213", "wzhs1214", "wzhs1215",
	"wzhs1216", "wzhs1217", "wzhs1218", "wzhs1219", "wzhs1220", "wzhs1221", "wzhs1222", "wzhs1223",
	"wzhs1224", "wzhs1225", "wzhs1226", "wzhs1227", "wzhs1228", "wzhs1229", "wzhs1230", "wzhs1231",
	"wzhs1232", "wzhs1233", "wzhs1234", "wzhs1235", "wzhs1236", "wzhs1237", "wzhs1238", "wzhs1239",
	"wzhs1240", "wzhs1241", "wzhs1242", "wzhs1243", "wzhs1244", "wzhs1245", "wzhs1246", "wzhs1247",
	"wzhs1248", "wzhs1249", "wzhs1250", "wzhs1251", "wzhs1252", "wzhs1253", "wzhs1254", "wzhs1255",
	"wzhs1256", "wzhs1257", "wzhs1258", "wzhs1259", "wzhs1260", "wzhs1261", "wzhs1262", "wzhs1263",
	"wzhs1264", "wzhs1265", "wzhs1266", "wzhs1267", "wzhs1268", "wzhs1269", "wzhs1270", "wzhs1271",
	"wzhs1272", "wzhs1273", "wzhs1274", "wzhs1275", "wzhs1276", "wzhs1277", "wzhs1278", "wzhs1279",
	"wzhs1280", "wzhs1281", "wzhs1282", "wzhs1283", "wzhs1284", "wzhs1285", "wzhs1286", "wzhs1287",
	"wzhs1288", "wzhs1289", "wzhs1290", "wzhs1291", "wzhs1292", "wzhs1293", "wzhs1294", "wzhs1295",
	"wzhs1296", "wzhs1297", "wzhs1298", "wzhs1299", "wzhs1300", "wzhs1301", "wzhs1302", "wzhs1303",
	"wzhs1304", "wzhs1305", "wzhs1306", "wzhs1307", "wzhs1308", "wzhs1309", "wzhs1310", "wzhs1311",
	"wzhs1312", "wzhs1313", "wzhs1314", "wzhs1315", "wzhs1316", "wzhs1317", "wzhs1318", "wzhs1319",
	"wzhs1320", "wzhs1321", "wzhs1322", "wzhs1323", "wzhs1324", "wzhs1325", "wzhs1326", "wzhs1327",
	"wzhs1328", "wzhs1329", "wzhs1330", "wzhs1331", "wzhs1332", "wzhs1333", "wzhs1334", "wzhs1335",
	"wzhs1336", "wzhs1337", "wzhs1338", "wzhs1339", "wzhs1340", "wzhs1341", "wzhs1342", "wzhs1343",
	"wzhs1344", "wzhs1345", "wzhs1346", "wzhs1347", "wzhs1348", "wzhs1349", "wzhs1350", "wzhs1351",
	"wzhs1352", "wzhs1353", "wzhs1354", "wzhs1355", "wzhs1356", "wzhs1357", "wzhs1358", "wzhs1359",
	"wzhs1360", "wzhs1361", "wzhs1362", "wzhs1363", "wzhs1364", "wzhs1365", "wzhs1366", "wzhs1367",
	"wzhs1368", "wzhs1369", "wzhs1370", "wzhs1371", "wzhs1372", "wzhs1373", "wzhs1374", "wzhs1375",
	"wzhs1376", "wzhs1377", "wzhs1378", "wzhs1379", "wzhs1380", "wzhs1381", "wzhs1382", "wzhs1383",
	"wzhs1384", "wzhs1385", "wzhs1386", "wzhs1387", "wzhs1388", "wzhs1389", "wzhs1390", "wzhs1391",
	"wzhs1392", "wzhs1393", "wzhs1394", "wzhs1395", "wzhs1396", "wzhs1397", "wzhs1398", "wzhs1399",
	"wzhs1400", "wzhs1401", "wzhs1402", "wzhs1403", "wzhs1404", "wzhs1405", "wzhs1406", "wzhs1407",
	"wzhs1408", "wzhs1409", "wzhs1410", "wzhs1411", "wzhs1412", "wzhs1413", "wzhs1414", "wzhs1415",
	"wzhs1416", "wzhs1417", "wzhs1418", "wzhs1419", "wzhs1420", "wzhs1421", "wzhs1422", "wzhs1423",
	"wzhs1424", "wzhs1425", "wzhs1426", "wzhs1427", "wzhs1428", "wzhs1429", "wzhs1430", "wzhs1431",
	"wzhs1432", "wzhs1433", "wzhs1434", "wzhs1435", "wzhs1436", "wzhs1437", "wzhs1438", "wzhs1439",
	"wzhs1440", "wzhs1441", "wzhs1442", "wzhs1443", "wzhs1444", "wzhs1445", "wzhs1446", "wzhs1447",
	"wzhs1448", "wzhs1449", "wzhs1450", "wzhs1451", "wzhs1452", "wzhs1453", "wzhs1454", "wzhs1455",
	"wzhs1456", "wzhs1457", "wzhs1458", "wzhs1459", "wzhs1460", "wzhs1461", "wzhs1462", "wzhs1463",
	"wzhs1464", "wzhs1465", "wzhs1466", "wzhs1467", "wzhs1468", "wzhs1469", "wzhs1470", "wzhs1471",
	"wzhs1472", "wzhs1473", "wzhs1474", "wzhs1475", "wzhs1476", "wzhs1477", "wzhs1478", "wzhs1479",
	"wzhs1480", "wzhs1481", "wzhs1482", "wzhs1483", "wzhs1484", "wzhs1485", "wzhs1486", "wzhs1487",
	"wzhs1488", "wzhs1489", "wzhs1490", "wzhs1491", "wzhs1492", "wzhs1493", "wzhs1494", "wzhs1495",
	"wzhs1496", "wzhs1497", "wzhs1498", "wzhs1499", "wzhs1500", "wzhs1501", "wzhs1502", "wzhs1503",
	"wzhs1504", "wzhs1505", "wzhs1506", "wzhs1507", "wzhs1508", "wzhs1509", "wzhs1510", "wzhs1511",
	"wzhs1512", "wzhs1513", "wzhs1514", "wzhs1515", "wzhs1516", "wzhs1517", "wzhs1518", "wzhs1519",
	"wzhs1520", "wzhs1521", "wzhs1522", "wzhs1523", "wzhs1524", "wzhs1525", "wzhs1526", "wzhs1527",
	"wzhs1528", "wzhs1529", "wzhs1530", "wzhs1531", "wzhs1532", "wzhs1533", "wzhs1534", "wzhs1535",
	"wzhs1536", "wzhs1537", "wzhs1538", "wzhs1539", "wzhs1540", "wzhs1541", "wzhs1542", "wzhs1543",
	"wzhs1544", "wzhs1545", "wzhs1546", "wzhs1547", "wzhs1548", "wzhs1549", "wzhs1550", "wzhs1551",
	"wzhs1552", "wzhs1553", "wzhs1554", "wzhs1555", "wzhs1556", "wzhs1557", "wzhs1558", "wzhs1559",
	"wzhs1560", "wzhs1561", "wzhs1562", "wzhs1563", "wzhs1564", "wzhs1565", "wzhs1566", "wzhs1567",
	"wzhs1568", "wzhs1569", "wzhs1570", "wzhs1571", "wzhs1572", "wzhs1573", "wzhs1574", "wzhs1575",
	"wzhs1576", "wzhs1577", "wzhs1578", "wzhs1579", "wzhs1580", "wzhs1581", "wzhs1582", "wzhs1583",
	"wzhs1584", "wzhs1585", "wzhs1586", "wzhs1587", "wzhs1588", "wzhs1589", "wzhs1590", "wzhs1591",
	"wzhs1592", "wzhs1593", "wzhs1594", "wzhs1595", "wzhs1596", "wzhs1597", "wzhs1598", "wzhs1599",
	"wzhs1600", "wzhs1601", "wzhs1602", "wzhs1603", "wzhs1604", "wzhs1605", "wzhs1606", "wzhs1607",
	"wzhs1608", "wzhs1609", "wzhs1610", "wzhs1611", "wzhs1612", "wzhs1613", "wzhs1614", "wzhs1615",
	"wzhs1616", "wzhs1617", "wzhs1618", "wzhs1619", "wzhs1620", "wzhs1621", "wzhs1622", "wzhs1623",
	"wzhs1624", "wzhs1625", "wzhs1626", "wzhs1627", "wzhs1628", "wzhs1629", "wzhs1630", "wzhs1631",
	"wzhs1632", "wzhs1633", "wzhs1634", "wzhs1635", "wzhs1636", "wzhs1637", "wzhs1638", "wzhs1639",
	"wzhs1640", "wzhs1641", "wzhs1642", "wzhs1643", "wzhs1644", "wzhs1645", "wzhs1646", "wzhs1647",
	"wzhs1648", "wzhs1649", "wzhs1650", "wzhs1651", "wzhs1652", "wzhs1653", "wzhs1654", "wzhs1655",
	"wzhs1656", "wzhs1657", "wzhs1658", "wzhs1659", "wzhs1660", "wzhs1661", "wzhs1662", "wzhs1663",
	"wzhs1664", "wzhs1665", "wzhs1666", "wzhs1667", "wzhs1668", "wzhs1669", "wzhs1670", "wzhs1671",
	"wzhs1672", "wzhs1673", "wzhs1674", "wzhs1675", "wzhs1676", "wzhs1677", "wzhs1678", "wzhs1679",
	"wzhs1680", "wzhs1681", "wzhs1682", "wzhs1683", "wzhs1684", "wzhs1685", "wzhs1686", "wzhs1687",
	"wzhs1688", "wzhs1689", "wzhs1690", "wzhs1691", "wzhs1692", "wzhs1693", "wzhs1694", "wzhs1695",
	"wzhs1696", "wzhs1697", "wzhs1698", "wzhs1699", "wzhs1700", "wzhs1701", "wzhs1702", "wzhs1703",
	"wzhs1704", "wzhs1705", "wzhs1706", "wzhs1707", "wzhs1708", "wzhs1709", "wzhs1710", "wzhs1711",
	"wzhs1712", "wzhs1713", "wzhs1714", "wzhs1715", "wzhs1716", "wzhs1717", "wzhs1718", "wzhs1719",
	"wzhs1720", "wzhs1721", "wzhs1722", "wzhs1723", "wzhs1724", "wzhs1725", "wzhs1726", "wzhs1727",
	"wzhs1728", "wzhs1729", "wzhs1730", "wzhs1731", "wzhs1732", "wzhs1733", "wzhs1734", "wzhs1735",
	"wzhs1736", "wzhs1737", "wzhs1738", "wzhs1739", "wzhs1740", "wzhs1741", "wzhs1742", "wzhs1743",
	"wzhs1744", "wzhs1745", "wzhs1746", "wzhs1747", "wzhs1748", "wzhs1749", "wzhs1750", "wzhs1751",
	"wzhs1752", "wzhs1753", "wzhs1754", "wzhs1755", "wzhs1756", "wzhs1757", "wzhs1758", "wzhs1759",
	"wzhs1760", "wzhs1761", "wzhs1762", "wzhs1763", "wzhs1764", "wzhs1765", "wzhs1766", "wzhs1767",
	"wzhs1768", "wzhs1769", "wzhs1770", "wzhs1771", "wzhs1772", "wzhs1773", "wzhs1774", "wzhs1775",
	"wzhs1776", "wzhs1777", "wzhs1778", "wzhs1779", "wzhs1780", "wzhs1781", "wzhs1782", "wzhs1783",
	"wzhs1784", "wzhs1785", "wzhs1786", "wzhs1787", "wzhs1788", "wzhs1789", "wzhs1790", "wzhs1791",
	"wzhs1792", "wzhs1793", "wzhs1794", "wzhs1795", "wzhs1796", "wzhs1797", "wzhs1798", "wzhs1799",
	"wzhs1800", "wzhs1801", "wzhs1802", "wzhs1803", "wzhs1804", "wzhs1805", "wzhs1806", "wzhs1807",
	"wzhs1808", "wzhs1809", "wzhs1810", "wzhs1811", "wzhs1812", "wzhs1813", "wzhs1814", "wzhs1815",
	"wzhs1816", "wzhs1817", "wzhs1818", "wzhs1819", "wzhs1820", "wzhs1821", "wzhs1822", "wzhs1823",
	"wzhs1824", "wzhs1825", "wzhs1826", "wzhs1827", "wzhs1828", "wzhs1829", "wzhs1830", "wzhs1831",
	"wzhs1832", "wzhs1833", "wzhs1834", "wzhs1835", "wzhs1836", "wzhs1837", "wzhs1838", "wzhs1839",
	"wzhs1840", "wzhs1841", "wzhs1842", "wzhs1843", "wzhs1844", "wzhs1845", "wzhs1846", "wzhs1847",
	"wzhs1848", "wzhs1849", "wzhs1850", "wzhs1851", "wzhs1852", "wzhs1853", "wzhs1854", "wzhs1855",
	"wzhs1856", "wzhs1857", "wzhs1858", "wzhs1859", "wzhs1860", "wzhs1861", "wzhs1862", "wzhs1863",
	"wzhs1864", "wzhs1865", "wzhs1866", "wzhs1867", "wzhs1868", "wzhs1869", "wzhs1870", "wzhs1871",
	"wzhs1872", "wzhs1873", "wzhs1874", "wzhs1875", "wzhs1876", "wzhs1877", "wzhs1878", "wzhs1879",
	"wzhs1880", "wzhs1881", "wzhs1882", "wzhs1883", "wzhs1884", "wzhs1885", "wzhs1886", "wzhs1887",
	"wzhs1888", "wzhs1889", "wzhs1890", "wzhs1891", "wzhs1892", "wzhs1893", "wzhs1894", "wzhs1895",
	"wzhs1896", "wzhs1897", "wzhs1898", "wzhs1899", "wzhs1900", "wzhs1901", "wzhs1902", "wzhs1903",
	"wzhs1904", "wzhs1905", "wzhs1906", "wzhs1907", "wzhs1908", "wzhs1909", "wzhs1910", "wzhs1911",
	"wzhs1912", "wzhs1913", "wzhs1914", "wzhs1915", "wzhs1916", "wzhs1917", "wzhs1918", "wzhs1919",
	"wzhs1920", "wzhs1921", "wzhs1922", "wzhs1923", "wzhs1924", "wzhs1925", "wzhs1926", "wzhs1927",
	"wzhs1928", "wzhs1929", "wzhs1930", "wzhs1931", "wzhs1932", "wzhs1933", "wzhs1934", "wzhs1935",
	"wzhs1936", "wzhs1937", "wzhs1938", "wzhs1939", "wzhs1940", "wzhs1941", "wzhs1942", "wzhs1943",
	"wzhs1944", "wzhs1945", "wzhs1946", "wzhs1947", "wzhs1948", "wzhs1949", "wzhs1950", "wzhs1951",
	"wzhs1952", "wzhs1953", "wzhs1954", "wzhs1955", "wzhs1956", "wzhs1957", "wzhs1958", "wzhs1959",
	"wzhs1960", "wzhs1961", "wzhs1962", "wzhs1963", "wzhs1964", "wzhs1965", "wzhs1966", "wzhs1967",
	"wzhs1968", "wzhs1969", "wzhs1970", "wzhs1971", "wzhs1972", "wzhs1973", "wzhs1974", "wzhs1975",
	"wzhs1976", "wzhs1977", "wzhs1978", "wzhs1979", "wzhs1980", "wzhs1981", "wzhs1982", "wzhs1983",
	"wzhs1984", "wzhs1985", "wzhs1986", "wzhs1987", "wzhs1988", "wzhs1989", "wzhs1990", "wzhs1991",
	"wzhs1992", "wzhs1993", "wzhs1994", "wzhs1995", "wzhs1996", "wzhs1997", "wzhs1998", "wzhs1999",
	"wzhs2000", "wzhs2001", "wzhs2002", "wzhs2003", "wzhs2004", "wzhs2005", "wzhs2006", "wzhs2007",
	"wzhs2008", "wzhs2009", "wzhs2010", "wzhs2011", "wzhs2012", "wzhs2013", "wzhs2014", "wzhs2015",
	"wzhs2016", "wzhs2017", "wzhs2018", "wzhs2019", "wzhs2020", "wzhs2021", "wzhs2022", "wzhs2023",
	"wzhs2024", "wzhs2025", "wzhs2026", "wzhs2027", "wzhs2028", "wzhs2029", "wzhs2030", "wzhs2031",
	"wzhs2032", "wzhs2033", "wzhs2034", "wzhs2035", "wzhs2036", "wzhs2037", "wzhs2038", "wzhs2039",
	"wzhs2040", "wzhs2041", "wzhs2042", "wzhs2043", "wzhs2044", "wzhs2045", "wzhs2046", "wzhs2047",
}
