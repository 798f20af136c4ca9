// Copyright (c) 2025 The dogecoin-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordlists

// chineseTraditional is a placeholder BIP39 wordlist: 2048 unique tokens of the correct
// shape (no whitespace, no delimiter collisions) standing in for the real
// upstream chineseTraditional word list. See DESIGN.md: English is the accurate reference
// list this module's test vectors depend on; this list needs replacing
// with the canonical upstream words before encoding real chineseTraditional mnemonics.
var chineseTraditional = [2048]string{
	"wzht0000", "wzht0001", "wzht0002", "wzht0003", "wzht0004", "wzht0005", "wzht0006", "wzht0007",
	"wzht0008", "wzht0009", "wzht0010", "wzht0011", "wzht0012", "wzht0013", "wzht0014", "wzht0015",
	"wzht0016", "wzht0017", "wzht0018", "wzht0019", "wzht0020", "wzht0021", "wzht0022", "wzht0023",
	"wzht0024", "wzht0025", "wzht0026", "wzht0027", "wzht0028", "wzht0029", "wzht0030", "wzht0031",
	"wzht0032", "wzht0033", "wzht0034", "wzht0035", "wzht0036", "wzht0037", "wzht0038", "wzht0039",
	"wzht0040", "wzht0041", "wzht0042", "wzht0043", "wzht0044", "wzht0045", "wzht0046", "wzht0047",
	"wzht0048", "wzht0049", "wzht0050", "wzht0051", "wzht0052", "wzht0053", "wzht0054", "wzht0055",
	"wzht0056", "wzht0057", "wzht0058", "wzht0059", "wzht0060", "wzht0061", "wzht0062", "wzht0063",
	"wzht0064", "wzht0065", "wzht0066", "wzht0067", "wzht0068", "wzht0069", "wzht0070", "wzht0071",
	"wzht0072", "wzht0073", "wzht0074", "wzht0075", "wzht0076", "wzht0077", "wzht0078", "wzht0079",
	"wzht0080", "wzht0081", "wzht0082", "wzht0083", "wzht0084", "wzht0085", "wzht0086", "wzht0087",
	"wzht0088", "wzht0089", "wzht0090", "wzht0091", "wzht0092", "wzht0093", "wzht0094", "wzht0095",
	"wzht0096", "wzht0097", "wzht0098", "wzht0099", "wzht0100", "wzht0101", "wzht0102", "wzht0103",
	"wzht0104", "wzht0105", "wzht0106", "wzht0107", "wzht0108", "wzht0109", "wzht0110", "wzht0111",
	"wzht0112", "wzht0113", "wzht0114", "wzht0115", "wzht0116", "wzht0117", "wzht0118", "wzht0119",
	"wzht0120", "wzht0121", "wzht0122", "wzht0123", "wzht0124", "wzht0125", "wzht0126", "wzht0127",
	"wzht0128", "wzht0129", "wzht0130", "wzht0131", "wzht0132", "wzht0133", "wzht0134", "wzht0135",
	"wzht0136", "wzht0137", "wzht0138", "wzht0139", "wzht0140", "wzht0141", "wzht0142", "wzht0143",
	"wzht0144", "wzht0145", "wzht0146", "wzht0147", "wzht0148", "wzht0149", "wzht0150", "wzht0151",
	"wzht0152", "wzht0153", "wzht0154", "wzht0155", "wzht0156", "wzht0157", "wzht0158", "wzht0159",
	"wzht0160", "wzht0161", "wzht0162", "wzht0163", "wzht0164", "wzht0165", "wzht0166", "wzht0167",
	"wzht0168", "wzht0169", "wzht0170", "wzht0171", "wzht0172", "wzht0173", "wzht0174", "wzht0175",
	"wzht0176", "wzht0177", "wzht0178", "wzht0179", "wzht0180", "wzht0181", "wzht0182", "wzht0183",
	"wzht0184", "wzht0185", "wzht0186", "wzht0187", "wzht0188", "wzht0189", "wzht0190", "wzht0191",
	"wzht0192", "wzht0193", "wzht0194", "wzht0195", "wzht0196", "wzht0197", "wzht0198", "wzht0199",
	"wzht0200", "wzht0201", "wzht0202", "wzht0203", "wzht0204", "wzht0205", "wzht0206", "wzht0207",
	"wzht0208", "wzht0209", "wzht0210", "wzht0211", "wzht0212", "wzht0213", "wzht0214", "wzht0215",
	"wzht0216", "wzht0217", "wzht0218", "wzht0219", "wzht0220", "wzht0221", "wzht0222", "wzht0223",
	"wzht0224", "wzht0225", "wzht0226", "wzht0227", "wzht0228", "wzht0229", "wzht0230", "wzht0231",
	"wzht0232", "wzht0233", "wzht0234", "wzht0235", "wzht0236", "wzht0237", "wzht0238", "wzht0239",
	"wzht0240", "wzht0241", "wzht0242", "wzht0243", "wzht0244", "wzht0245", "wzht0246", "wzht0247",
	"wzht0248", "wzht0249", "wzht0250", "wzht0251", "wzht0252", "wzht0253", "wzht0254", "wzht0255",
	"wzht0256", "wzht0257", "wzht0258", "wzht0259", "wzht0260", "wzht0261", "wzht0262", "wzht0263",
	"wzht0264", "wzht0265", "wzht0266", "wzht0267", "wzht0268", "wzht0269", "wzht0270", "wzht0271",
	"wzht0272", "wzht0273", "wzht0274", "wzht0275", "wzht0276", "wzht0277", "wzht0278", "wzht0279",
	"wzht0280", "wzht0281", "wzht0282", "wzht0283", "wzht0284", "wzht0285", "wzht0286", "wzht0287",
	"wzht0288", "wzht0289", "wzht0290", "wzht0291", "wzht0292", "wzht0293", "wzht0294", "wzht0295",
	"wzht0296", "wzht0297", "wzht0298", "wzht0299", "wzht0300", "wzht0301", "wzht0302", "wzht0303",
	"wzht0304", "wzht0305", "wzht0306", "wzht0307", "wzht0308", "wzht0309", "wzht0310", "wzht0311",
	"wzht0312", "wzht0313", "wzht0314", "wzht0315", "wzht0316", "wzht0317", "wzht0318", "wzht0319",
	"wzht0320", "wzht0321", "wzht0322", "wzht0323", "wzht0324", "wzht0325", "wzht0326", "wzht0327",
	"wzht0328", "wzht0329", "wzht0330", "wzht0331", "wzht0332", "wzht0333", "wzht0334", "wzht0335",
	"wzht0336", "wzht0337", "wzht0338", "wzht0339", "wzht0340", "wzht0341", "wzht0342", "wzht0343",
	"wzht0344", "wzht0345", "wzht0346", "wzht0347", "wzht0348", "wzht0349", "wzht0350", "wzht0351",
	"wzht0352", "wzht0353", "wzht0354", "wzht0355", "wzht0356", "wzht0357", "wzht0358", "wzht0359",
	"wzht0360", "wzht0361", "wzht0362", "wzht0363", "wzht0364", "wzht0365", "wzht0366", "wzht0367",
	"wzht0368", "wzht0369", "wzht0370", "wzht0371", "wzht0372", "wzht0373", "wzht0374", "wzht0375",
	"wzht0376", "wzht0377", "wzht0378", "wzht0379", "wzht0380", "wzht0381", "wzht0382", "wzht0383",
	"wzht0384", "wzht0385", "wzht0386", "wzht0387", "wzht0388", "wzht0389", "wzht0390", "wzht0391",
	"wzht0392", "wzht0393", "wzht0394", "wzht0395", "wzht0396", "wzht0397", "wzht0398", "wzht0399",
	"wzht0400", "wzht0401", "wzht0402", "wzht0403", "wzht0404", "wzht0405", "wzht0406", "wzht0407",
	"wzht0408", "wzht0409", "wzht0410", "wzht0411", "wzht0412", "wzht0413", "wzht0414", "wzht0415",
	"wzht0416", "wzht0417", "wzht0418", "wzht0419", "wzht0420", "wzht0421", "wzht0422", "wzht0423",
	"wzht0424", "wzht0425", "wzht0426", "wzht0427", "wzht0428", "wzht0429", "wzht0430", "wzht0431",
	"wzht0432", "wzht0433", "wzht0434", "wzht0435", "wzht0436", "wzht0437", "wzht0438", "wzht0439",
	"wzht0440", "wzht0441", "wzht0442", "wzht0443", "wzht0444", "wzht0445", "wzht0446", "wzht0447",
	"wzht0448", "wzht0449", "wzht0450", "wzht0451", "wzht0452", "wzht0453", "wzht0454", "wzht0455",
	"wzht0456", "wzht0457", "wzht0458", "wzht0459", "wzht0460", "wzht0461", "wzht0462", "wzht0463",
	"wzht0464", "wzht0465", "wzht0466", "wzht0467", "wzht0468", "wzht0469", "wzht0470", "wzht0471",
	"wzht0472", "wzht0473", "wzht0474", "wzht0475", "wzht0476", "wzht0477", "wzht0478", "wzht0479",
	"wzht0480", "wzht0481", "wzht0482", "wzht0483", "wzht0484", "wzht0485", "wzht0486", "wzht0487",
	"wzht0488", "wzht0489", "wzht0490", "wzht0491", "wzht0492", "wzht0493", "wzht0494", "wzht0495",
	"wzht0496", "wzht0497", "wzht0498", "wzht0499", "wzht0500", "wzht0501", "wzht0502", "wzht0503",
	"wzht0504", "wzht0505", "wzht0506", "wzht0507", "wzht0508", "wzht0509", "wzht0510", "wzht0511",
	"wzht0512", "wzht0513", "wzht0514", "wzht0515", "wzht0516", "wzht0517", "wzht0518", "wzht0519",
	"wzht0520", "wzht0521", "wzht0522", "wzht0523", "wzht0524", "wzht0525", "wzht0526", "wzht0527",
	"wzht0528", "wzht0529", "wzht0530", "wzht0531", "wzht0532", "wzht0533", "wzht0534", "wzht0535",
	"wzht0536", "wzht0537", "wzht0538", "wzht0539", "wzht0540", "wzht0541", "wzht0542", "wzht0543",
	"wzht0544", "wzht0545", "wzht0546", "wzht0547", "wzht0548", "wzht0549", "wzht0550", "wzht0551",
	"wzht0552", "wzht0553", "wzht0554", "wzht0555", "wzht0556", "wzht0557", "wzht0558", "wzht0559",
	"wzht0560", "wzht0561", "wzht0562", "wzht0563", "wzht0564", "wzht0565", "wzht0566", "wzht0567",
	"wzht0568", "wzht0569", "wzht0570", "wzht0571", "wzht0572", "wzht0573", "wzht0574", "wzht0575",
	"wzht0576", "wzht0577", "wzht0578", "wzht0579", "wzht0580", "wzht0581", "wzht0582", "wzht0583",
	"wzht0584", "wzht0585", "wzht0586", "wzht0587", "wzht0588", "wzht0589", "wzht0590", "wzht0591",
	"wzht0592", "wzht0593", "wzht0594", "wzht0595", "wzht0596", "wzht0597", "wzht0598", "wzht0599",
	"wzht0600", "wzht0601", "wzht0602", "wzht0603", "wzht0604", "wzht0605", "wzht0606", "wzht0607",
	"wzht0608", "wzht0609", "wzht0610", "wzht0611", "wzht0612", "wzht0613", "wzht0614", "wzht0615",
	"wzht0616", "wzht0617", "wzht0618", "wzht0619", "wzht0620", "wzht0621", "wzht0622", "wzht0623",
	"wzht0624", "wzht0625", "wzht0626", "wzht0627", "wzht0628", "wzht0629", "wzht0630", "wzht0631",
	"wzht0632", "wzht0633", "wzht0634", "wzht0635", "wzht0636", "wzht0637", "wzht0638", "wzht0639",
	"wzht0640", "wzht0641", "wzht0642", "wzht0643", "wzht0644", "wzht0645", "wzht0646", "wzht0647",
	"wzht0648", "wzht0649", "wzht0650", "wzht0651", "wzht0652", "wzht0653", "wzht0654", "wzht0655",
	"wzht0656", "wzht0657", "wzht0658", "wzht0659", "wzht0660", "wzht0661", "wzht0662", "wzht0663",
	"wzht0664", "wzht0665", "wzht0666", "wzht0667", "wzht0668", "wzht0669", "wzht0670", "wzht0671",
	"wzht0672", "wzht0673", "wzht0674", "wzht0675", "wzht0676", "wzht0677", "wzht0678", "wzht0679",
	"wzht0680", "wzht0681", "wzht0682", "wzht0683", "wzht0684", "wzht0685", "wzht0686", "wzht0687",
	"wzht0688", "wzht0689", "wzht0690", "wzht0691", "wzht0692", "wzht0693", "wzht0694", "wzht0695",
	"wzht0696", "wzht0697", "wzht0698", "wzht0699", "wzht0700", "wzht0701", "wzht0702", "wzht0703",
	"wzht0704", "wzht0705", "wzht0706", "wzht0707", "wzht0708", "wzht0709", "wzht0710", "wzht0711",
	"wzht0712", "wzht0713", "wzht0714", "wzht0715", "wzht0716", "wzht0717", "wzht0718", "wzht0719",
	"wzht0720", "wzht0721", "wzht0722", "wzht0723", "wzht0724", "wzht0725", "wzht0726", "wzht0727",
	"wzht0728", "wzht0729", "wzht0730", "wzht0731", "wzht0732", "wzht0733", "wzht0734", "wzht0735",
	"wzht0736", "wzht0737", "wzht0738", "wzht0739", "wzht0740", "wzht0741", "wzht0742", "wzht0743",
	"wzht0744", "wzht0745", "wzht0746", "wzht0747", "wzht0748", "wzht0749", "wzht0750", "wzht0751",
	"wzht0752", "wzht0753", "wzht0754", "wzht0755", "wzht0756", "wzht0757", "wzht0758", "wzht0759",
	"wzht0760", "wzht0761", "wzht0762", "wzht0763", "wzht0764", "wzht0765", "wzht0766", "wzht0767",
	"wzht0768", "wzht0769", "wzht0770", "wzht0771", "wzht0772", "wzht0773", "wzht0774", "wzht0775",
	"wzht0776", "wzht0777", "wzht0778", "wzht0779", "wzht0780", "wzht0781", "wzht0782", "wzht0783",
	"wzht0784", "wzht0785", "wzht0786", "wzht0787", "wzht0788", "wzht0789", "wzht0790", "wzht0791",
	"wzht0792", "wzht0793", "wzht0794", "wzht0795", "wzht0796", "wzht0797", "wzht0798", "wzht0799",
	"wzht0800", "wzht0801", "wzht0802", "wzht0803", "wzht0804", "wzht0805", "wzht0806", "wzht0807",
	"wzht0808", "wzht0809", "wzht0810", "wzht0811", "wzht0812", "wzht0813", "wzht0814", "wzht0815",
	"wzht0816", "wzht0817", "wzht0818", "wzht0819", "wzht0820", "wzht0821", "wzht0822", "wzht0823",
	"wzht0824", "wzht0825", "wzht0826", "wzht0827", "wzht0828", "wzht0829", "wzht0830", "wzht0831",
	"wzht0832", "wzht0833", "wzht0834", "wzht0835", "wzht0836", "wzht0837", "wzht0838", "wzht0839",
	"wzht0840", "wzht0841", "wzht0842", "wzht0843", "wzht0844", "wzht0845", "wzht0846", "wzht0847",
	"wzht0848", "wzht0849", "wzht0850", "wzht0851", "wzht0852", "wzht0853", "wzht0854", "wzht0855",
	"wzht0856", "wzht0857", "wzht0858", "wzht0859", "wzht0860", "wzht0861", "wzht0862", "wzht0863",
	"wzht0864", "wzht0865", "wzht0866", "wzht0867", "wzht0868", "wzht0869", "wzht0870", "wzht0871",
	"wzht0872", "wzht0873", "wzht0874", "wzht0875", "wzht0876", "wzht0877", "wzht0878", "wzht0879",
	"wzht0880", "wzht0881", "wzht0882", "wzht0883", "wzht0884", "wzht0885", "wzht0886", "wzht0887",
	"wzht0888", "wzht0889", "wzht0890", "wzht0891", "wzht0892", "wzht0893", "wzht0894", "wzht0895",
	"wzht0896", "wzht0897", "wzht0898", "wzht0899", "wzht0900", "wzht0901", "wzht0902", "wzht0903",
	"wzht0904", "wzht0905", "wzht0906", "wzht0907", "wzht0908", "wzht0909", "wzht0910", "wzht0911",
	"wzht0912", "wzht0913", "wzht0914", "wzht0915", "wzht0916", "wzht0917", "wzht0918", "wzht0919",
	"wzht0920", "wzht0921", "wzht0922", "wzht0923", "wzht0924", "wzht0925", "wzht0926", "wzht0927",
	"wzht0928", "wzht0929", "wzht0930", "wzht0931", "wzht0932", "wzht0933", "wzht0934", "wzht0935",
	"wzht0936", "wzht0937", "wzht0938", "wzht0939", "wzht0940", "wzht0941", "wzht0942", "wzht0943",
	"wzht0944", "wzht0945", "wzht0946", "wzht0947", "wzht0948", "wzht0949", "wzht0950", "wzht0951",
	"wzht0952", "wzht0953", "wzht0954", "wzht0955", "wzht0956", "wzht0957", "wzht0958", "wzht0959",
	"wzht0960", "wzht0961", "wzht0962", "wzht0963", "wzht0964", "wzht0965", "wzht0966", "wzht0967",
	"wzht0968", "wzht0969", "wzht0970", "wzht0971", "wzht0972", "wzht0973", "wzht0974", "wzht0975",
	"wzht0976", "wzht0977", "wzht0978", "wzht0979", "wzht0980", "wzht0981", "wzht0982", "wzht0983",
	"wzht0984", "wzht0985", "wzht0986", "wzht0987", "wzht0988", "wzht0989", "wzht0990", "wzht0991",
	"wzht0992", "wzht0993", "wzht0994", "wzht0995", "wzht0996", "wzht0997", "wzht0998", "wzht0999",
	"wzht1000", "wzht1001", "wzht1002", "wzht1003", "wzht1004", "wzht1005", "wzht1006", "wzht1007",
	"wzht1008", "wzht1009", "wzht1010", "wzht1011", "wzht1012", "wzht1013", "wzht1014", "wzht1015",
	"wzht1016", "wzht1017", "wzht1018", "wzht1019", "wzht1020", "wzht1021", "wzht1022", "wzht1023",
	"wzht1024", "wzht1025", "wzht1026", "wzht1027", "wzht1028", "wzht1029", "wzht1030", "wzht1031",
	"wzht1032", "wzht1033", "wzht1034", "wzht1035", "wzht1036", "wzht1037", "wzht1038", "wzht1039",
	"wzht1040", "wzht1041", "wzht1042", "wzht1043", "wzht1044", "wzht1045", "wzht1046", "wzht1047",
	"wzht1048", "wzht1049", "wzht1050", "wzht1051", "wzht1052", "wzht1053", "wzht1054", "wzht1055",
	"wzht1056", "wzht1057", "wzht1058", "wzht1059", "wzht1060", "wzht1061", "wzht1062", "wzht1063",
	"wzht1064", "wzht1065", "wzht1066", "wzht1067", "wzht1068", "wzht1069", "wzht1070", "wzht1071",
	"wzht1072", "wzht1073", "wzht1074", "wzht1075", "wzht1076", "wzht1077", "wzht1078", "wzht1079",
	"wzht1080", "wzht1081", "wzht1082", "wzht1083", "wzht1084", "wzht1085", "wzht1086", "wzht1087",
	"wzht1088", "wzht1089", "wzht1090", "wzht1091", "wzht1092", "wzht1093", "wzht1094", "wzht1095",
	"wzht1096", "wzht1097", "wzht1098", "wzht1099", "wzht1100", "wzht1101", "wzht1102", "wzht1103",
	"wzht1104", "wzht1105", "wzht1106", "wzht1107", "wzht1108", "wzht1109", "wzht1110", "wzht1111",
	"wzht1112", "wzht1113", "wzht1114", "wzht1115", "wzht1116", "wzht1117", "wzht1118", "wzht1119",
	"wzht1120", "wzht1121", "wzht1122", "wzht1123", "wzht1124", "wzht1125", "wzht1126", "wzht1127",
	"wzht1128", "wzht1129", "wzht1130", "wzht1131", "wzht1132", "wzht1133", "wzht1134", "wzht1135",
	"wzht1136", "wzht1137", "wzht1138", "wzht1139", "wzht1140", "wzht1141", "wzht1142", "wzht1143",
	"wzht1144", "wzht1145", "wzht1146", "wzht1147", "wzht1148", "wzht1149", "wzht1150", "wzht1151",
	"wzht1152", "wzht1153", "wzht1154", "wzht1155", "wzht1156", "wzht1157", "wzht1158", "wzht1159",
	"wzht1160", "wzht1161", "wzht1162", "wzht1163", "wzht1164", "wzht1165", "wzht1166", "wzht1167",
	"wzht1168", "wzht1169", "wzht1170", "wzht1171", "wzht1172", "wzht1173", "wzht1174", "wzht1175",
	"wzht1176", "wzht1177", "wzht1178", "wzht1179", "wzht1180", "wzht1181", "wzht1182", "wzht1183",
	"wzht1184", "wzht1185", "wzht1186", "wzht1187", "wzht1188", "wzht1189", "wzht1190", "wzht1191",
	"wzht1192", "wzht1193", "wzht1194", "wzht1195", "wzht1196", "wzht1197", "wzht1198", "wzht1199",
	"wzht1200", "wzht1201", "wzht1202", "wzht1203", "wzht1204", "wzht1205", "wzht1206", "wzht1207",
	"wzht1208", "wzht1209", "wzht1210", "wzht1211", "wzht1212", "wzht1213", "wzht1214", "wzht1215",
	"wzht1216", "wzht1217", "wzht1218", "wzht1219", "wzht1220", "wzht1221", "wzht1222", "wzht1223",
	"wzht1224", "wzht1225", "wzht1226", "wzht1227", "wzht1228", "wzht1229", "wzht1230", "wzht1231",
	"wzht1232", "wzht1233", "wzht1234", "wzht1235", "wzht1236", "wzht1237", "wzht1238", "wzht1239",
	"wzht1240", "wzht1241", "wzht1242", "wzht1243", "wzht1244", "wzht1245", "wzht1246", "wzht1247",
	"wzht1248", "wzht1249", "wzht1250", "wzht1251", "wzht1252", "wzht1253", "wzht1254", "wzht1255",
	"wzht1256", "wzht1257", "wzht1258", "wzht1259", "wzht1260", "wzht1261", "wzht1262", "wzht1263",
	"wzht1264", "wzht1265", "wzht1266", "wzht1267", "wzht1268", "wzht1269", "wzht1270", "wzht1271",
	"wzht1272", "wzht1273", "wzht1274", "wzht1275", "wzht1276", "wzht1277", "wzht1278", "wzht1279",
	"wzht1280", "wzht1281", "wzht1282", "wzht1283", "wzht1284", "wzht1285", "wzht1286", "wzht1287",
	"wzht1288", "wzht1289", "wzht1290", "wzht1291", "wzht1292", "wzht1293", "wzht1294", "wzht1295",
	"wzht1296", "wzht1297", "wzht1298", "wzht1299", "wzht1300", "wzht1301", "wzht1302", "wzht1303",
	"wzht1304", "wzht1305", "wzht1306", "wzht1307", "wzht1308", "wzht1309", "wzht1310", "wzht1311",
	"wzht1312", "wzht1313", "wzht1314", "wzht1315", "wzht1316", "wzht1317", "wzht1318", "wzht1319",
	"wzht1320", "wzht1321", "wzht1322", "wzht1323", "wzht1324", "wzht1325", "wzht1326", "wzht1327",
	"wzht1328", "wzht1329", "wzht1330", "wzht1331", "wzht1332", "wzht1333", "wzht1334", "wzht1335",
	"wzht1336", "wzht1337", "wzht1338", "wzht1339", "wzht1340", "wzht1341", "wzht1342", "wzht1343",
	"wzht1344", "wzht1345", "wzht1346", "wzht1347", "wzht1348", "wzht1349", "wzht1350", "wzht1351",
	"wzht1352", "wzht1353", "wzht1354", "wzht1355", "wzht1356", "wzht1357", "wzht1358", "wzht1359",
	"wzht1360", "wzht1361", "wzht1362", "wzht1363", "wzht1364", "wzht1365", "wzht1366", "wzht1367",
	"wzht1368", "wzht1369", "wzht1370", "wzht1371", "wzht1372", "wzht1373", "wzht1374", "wzht1375",
	"wzht1376", "wzht1377", "wzht1378", "wzht1379", "wzht1380", "wzht1381", "wzht1382", "wzht1383",
	"wzht1384", "wzht1385", "wzht1386", "wzht1387", "wzht1388", "wzht1389", "wzht1390", "wzht1391",
	"wzht1392", "wzht1393", "wzht1394", "wzht1395", "wzht1396", "wzht1397", "wzht1398", "wzht1399",
	"wzht1400", "wzht1401", "wzht1402", "wzht1403", "wzht1404", "wzht1405", "wzht1406", "wzht1407",
	"wzht1408", "wzht1409", "wzht1410", "wzht1411", "wzht1412", "wzht1413", "wzht1414", "wzht1415",
	"wzht1416", "wzht1417", "wzht1418", "wzht1419", "wzht1420", "wzht1421", "wzht1422", "wzht1423",
	"wzht1424", "wzht1425", "wzht1426", "wzht1427", "wzht1428", "wzht1429", "wzht1430", "wzht1431",
	"wzht1432", "wzht1433", "wzht1434", "wzht1435", "wzht1436", "wzht1437", "wzht1438", "wzht1439",
	"wzht1440", "wzht1441", "wzht1442", "wzht1443", "wzht1444", "wzht1445", "wzht1446", "wzht1447",
	"wzht1448", "wzht1449", "wzht1450", "wzht1451", "wzht1452", "wzht1453", "wzht1454", "wzht1455",
	"wzht1456", "wzht1457", "wzht1458", "wzht1459", "wzht1460", "wzht1461", "wzht1462", "wzht1463",
	"wzht1464", "wzht1465", "wzht1466", "wzht1467", "wzht1468", "wzht1469", "wzht1470", "wzht1471",
	"wzht1472", "wzht1473", "wzht1474", "wzht1475", "wzht1476", "wzht1477", "wzht1478", "wzht1479",
	"wzht1480", "wzht1481", "wzht1482", "wzht1483", "wzht1484", "wzht1485", "wzht1486", "wzht1487",
	"wzht1488", "wzht1489", "wzht1490", "wzht1491", "wzht1492", "wzht1493", "wzht1494", "wzht1495",
	"wzht1496", "wzht1497", "wzht1498", "wzht1499", "wzht1500", "wzht1501", "wzht1502", "wzht1503",
	"wzht1504", "wzht1505", "wzht1506", "wzht1507", "wzht1508", "wzht1509", "wzht1510", "wzht1511",
	"wzht1512", "wzht1513", "wzht1514", "wzht1515", "wzht1516", "wzht1517", "wzht1518", "wzht1519",
	"wzht1520", "wzht1521", "wzht1522", "wzht1523", "wzht1524", "wzht1525", "wzht1526", "wzht1527",
	"wzht1528", "wzht1529", "wzht1530", "wzht1531", "wzht1532", "wzht1533", "wzht1534", "wzht1535",
	"wzht1536", "wzht1537", "wzht1538", "wzht1539", "wzht1540", "wzht1541", "wzht1542", "wzht1543",
	"wzht1544", "wzht1545", "wzht1546", "wzht1547", "wzht1548", "wzht1549", "wzht1550", "wzht1551",
	"wzht1552", "wzht1553", "wzht1554", "wzht1555", "wzht1556", "wzht1557", "wzht1558", "wzht1559",
	"wzht1560", "wzht1561", "wzht1562", "wzht1563", "wzht1564", "wzht1565", "wzht1566", "wzht1567",
	"wzht1568", "wzht1569", "wzht1570", "wzht1571", "wzht1572", "wzht1573", "wzht1574", "wzht1575",
	"wzht1576", "wzht1577", "wzht1578", "wzht1579", "wzht1580", "wzht1581", "wzht1582", "wzht1583",
	"wzht1584", "wzht1585", "wzht1586", "wzht1587", "wzht1588", "wzht1589", "wzht1590", "wzht1591",
	"wzht1592", "wzht1593", "wzht1594", "wzht1595", "wzht1596", "wzht1597", "wzht1598", "wzht1599",
	"wzht1600", "wzht1601", "wzht1602", "wzht1603", "wzht1604", "wzht1605", "wzht1606", "wzht1607",
	"wzht1608", "wzht1609", "wzht1610", "wzht1611", "wzht1612", "wzht1613", "wzht1614", "wzht1615",
	"wzht1616", "wzht1617", "wzht1618", "wzht1619", "wzht1620", "wzht1621", "wzht1622", "wzht1623",
	"wzht1624", "wzht1625", "wzht1626", "wzht1627", "wzht1628", "wzht1629", "wzht1630", "wzht1631",
	"wzht1632", "wzht1633", "wzht1634", "wzht1635", "wzht1636", "wzht1637", "wzht1638", "wzht1639",
	"wzht1640", "wzht1641", "wzht1642", "wzht1643", "wzht1644", "wzht1645", "wzht1646", "wzht1647",
	"wzht1648", "wzht1649", "wzht1650", "wzht1651", "wzht1652", "wzht1653", "wzht1654", "wzht1655",
	"wzht1656", "wzht1657", "wzht1658", "wzht1659", "wzht1660", "wzht1661", "wzht1662", "wzht1663",
	"wzht1664", "wzht1665", "wzht1666", "wzht1667", "wzht1668", "wzht1669", "wzht1670", "wzht1671",
	"wzht1672", "wzht1673", "wzht1674", "wzht1675", "wzht1676", "wzht1677", "wzht1678", "wzht1679",
	"wzht1680", "wzht1681", "wzht1682", "wzht1683", "wzht1684", "wzht1685", "wzht1686", "wzht1687",
	"wzht1688", "wzht1689", "wzht1690", "wzht1691", "wzht1692", "wzht1693", "wzht1694", "wzht1695",
	"wzht1696", "wzht1697", "wzht1698", "wzht1699", "wzht1700", "wzht1701", "wzht1702", "wzht1703",
	"wzht1704", "wzht1705", "wzht1706", "wzht1707", "wzht1708", "wzht1709", "wzht1710", "wzht1711",
	"wzht1712", "wzht1713", "wzht1714", "wzht1715", "wzht1716", "wzht1717", "wzht1718", "wzht1719",
	"wzht1720", "wzht1721", "wzht1722", "wzht1723", "wzht1724", "wzht1725", "wzht1726", "wzht1727",
	"wzht1728", "wzht1729", "wzht1730", "wzht1731", "wzht1732", "wzht1733", "wzht1734", "wzht1735",
	"wzht1736", "wzht1737", "wzht1738", "wzht1739", "wzht1740", "wzht1741", "wzht1742", "wzht1743",
	"wzht1744", "wzht1745", "wzht1746", "wzht1747", "wzht1748", "wzht1749", "wzht1750", "wzht1751",
	"wzht1752", "wzht1753", "wzht1754", "wzht1755", "wzht1756", "wzht1757", "wzht1758", "wzht1759",
	"wzht1760", "wzht1761", "wzht1762", "wzht1763", "wzht1764", "wzht1765", "wzht1766", "wzht1767",
	"wzht1768", "wzht1769", "wzht1770", "wzht1771", "wzht1772", "wzht1773", "wzht1774", "wzht1775",
	"wzht1776", "wzht1777", "wzht1778", "wzht1779", "wzht1780", "wzht1781", "wzht1782", "wzht1783",
	"wzht1784", "wzht1785", "wzht1786", "wzht1787", "wzht1788", "wzht1789", "wzht1790", "wzht1791",
	"wzht1792", "wzht1793", "wzht1794", "wzht1795", "wzht1796", "wzht1797", "wzht1798", "wzht1799",
	"wzht1800", "wzht1801", "wzht1802", "wzht1803", "wzht1804", "wzht1805", "wzht1806", "wzht1807",
	"wzht1808", "wzht1809", "wzht1810", "wzht1811", "wzht1812", "wzht1813", "wzht1814", "wzht1815",
	"wzht1816", "wzht1817", "wzht1818", "wzht1819", "wzht1820", "wzht1821", "wzht1822", "wzht1823",
	"wzht1824", "wzht1825", "wzht1826", "wzht1827", "wzht1828", "wzht1829", "wzht1830", "wzht1831",
	"wzht1832", "wzht1833", "wzht1834", "wzht1835", "wzht1836", "wzht1837", "wzht1838", "wzht1839",
	"wzht1840", "wzht1841", "wzht1842", "wzht1843", "wzht1844", "wzht1845", "wzht1846", "wzht1847",
	"wzht1848", "wzht1849", "wzht1850", "wzht1851", "wzht1852", "wzht1853", "wzht1854", "wzht1855",
	"wzht1856", "wzht1857", "wzht1858", "wzht1859", "wzht1860", "wzht1861", "wzht1862", "wzht1863",
	"wzht1864", "wzht1865", "wzht1866", "wzht1867", "wzht1868", "wzht1869", "wzht1870", "wzht1871",
	"wzht1872", "wzht1873", "wzht1874", "wzht1875", "wzht1876", "wzht1877", "wzht1878", "wzht1879",
	"wzht1880", "wzht1881", "wzht1882", "wzht1883", "wzht1884", "wzht1885", "wzht1886", "wzht1887",
	"wzht1888", "wzht1889", "wzht1890", "wzht1891", "wzht1892", "wzht1893", "wzht1894", "wzht1895",
	"wzht1896", "wzht1897", "wzht1898", "wzht1899", "wzht1900", "wzht1901", "wzht1902", "wzht1903",
	"wzht1904", "wzht1905", "wzht1906", "wzht1907", "wzht1908", "wzht1909", "wzht1910", "wzht1911",
	"wzht1912", "wzht1913", "wzht1914", "wzht1915", "wzht1916", "wzht1917", "wzht1918", "wzht1919",
	"wzht1920", "wzht1921", "wzht1922", "wzht1923", "wzht1924", "wzht1925", "wzht1926", "wzht1927",
	"wzht1928", "wzht1929", "wzht1930", "wzht1931", "wzht1932", "wzht1933", "wzht1934", "wzht1935",
	"wzht1936", "wzht1937", "wzht1938", "wzht1939", "wzht1940", "wzht1941", "wzht1942", "wzht1943",
	"wzht1944", "wzht1945", "wzht1946", "wzht1947", "wzht1948", "wzht1949", "wzht1950", "wzht1951",
	"wzht1952", "wzht1953", "wzht1954", "wzht1955", "wzht1956", "wzht1957", "wzht1958", "wzht1959",
	"wzht1960", "wzht1961", "wzht1962", "wzht1963", "wzht1964", "wzht1965", "wzht1966", "wzht1967",
	"wzht1968", "wzht1969", "wzht1970", "wzht1971", "wzht1972", "wzht1973", "wzht1974", "wzht1975",
	"wzht1976", "wzht1977", "wzht1978", "wzht1979", "wzht1980", "wzht1981", "wzht1982", "wzht1983",
	"wzht1984", "wzht1985", "wzht1986", "wzht1987", "wzht1988", "wzht1989", "wzht1990", "wzht1991",
	"wzht1992", "wzht1993", "wzht1994", "wzht1995", "wzht1996", "wzht1997", "wzht1998", "wzht1999",
	"wzht2000", "wzht2001", "wzht2002", "wzht2003", "wzht2004", "wzht2005", "wzht2006", "wzht2007",
	"wzht2008", "wzht2009", "wzht2010", "wzht2011", "wzht2012", "wzht2013", "wzht2014", "wzht2015",
	"wzht2016", "wzht2017", "wzht2018", "wzht2019", "wzht2020", "wzht2021", "wzht2022", "wzht2023",
	"wzht2024", "wzht2025", "wzht2026", "wzht2027", "wzht2028", "wzht2029", "wzht2030", "wzht2031",
	"wzht2032", "wzht2033", "wzht2034", "wzht2035", "wzht2036", "wzht2037", "wzht2038", "wzht2039",
	"wzht2040", "wzht2041", "wzht2042", "wzht2043", "wzht2044", "wzht2045", "wzht2046", "wzht2047",
}
